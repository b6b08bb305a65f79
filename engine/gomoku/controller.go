package gomoku

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"omok-local/engine"
	"omok-local/types"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// SetDebugOutput sends engine debug lines to w.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// State is the controller's turn state.
type State int

const (
	AwaitingHumanMove State = iota
	ComputingAIMove
	Terminal
)

func (s State) String() string {
	switch s {
	case AwaitingHumanMove:
		return "awaiting-human"
	case ComputingAIMove:
		return "computing-ai"
	case Terminal:
		return "terminal"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Controller sequences a human against the computer and implements
// engine.GameEngine. It is the only code that commits stones.
//
// A Controller is not safe for concurrent use; the UI calls it from its
// event loop only.
type Controller struct {
	id         string
	board      *Board
	human      types.Stone
	ai         types.Stone
	difficulty types.Difficulty
	rng        Rand
	opening    []types.Coord

	state       State
	status      types.GameStatus
	toMove      types.Stone
	lastMove    types.Coord
	winningLine []types.Coord

	moveCallback func(c types.Coord, stone types.Stone, boardState *types.BoardState)
	endCallback  func(status types.GameStatus)
}

var _ engine.GameEngine = (*Controller)(nil)

// NewController creates a controller for cfg. rng may be nil, in which
// case one is seeded from cfg.Seed (or the clock if that is zero).
// Register callbacks, then call Reset to start playing.
func NewController(cfg engine.GameConfig, rng Rand) *Controller {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	human := cfg.PlayerColor
	if human != types.White {
		human = types.Black
	}
	g := &Controller{
		human:      human,
		ai:         human.Opponent(),
		difficulty: cfg.Difficulty.OrDefault(),
		rng:        rng,
		opening:    append([]types.Coord(nil), cfg.Opening...),
	}
	g.clear()
	return g
}

func (g *Controller) clear() {
	g.id = uuid.NewString()
	g.board = NewBoard()
	g.state = AwaitingHumanMove
	g.status = types.InProgress
	g.toMove = types.Black
	g.lastMove = types.NoCoord
	g.winningLine = nil
}

// Reset starts a new game on a cleared board. Opening stones are placed
// first; then, if it is the computer's turn, it moves.
func (g *Controller) Reset() {
	g.clear()
	debugLog.Printf("game=%s reset human=%s ai=%s difficulty=%s", g.id, g.human, g.ai, g.difficulty)

	for _, c := range g.opening {
		if g.status.Terminal() {
			break
		}
		if err := g.commit(c, g.toMove); err != nil {
			debugLog.Printf("game=%s skipping opening stone: %v", g.id, err)
		}
	}
	if g.state == Terminal {
		return
	}
	if g.toMove == g.ai {
		g.playAI()
	}
}

// SubmitHumanMove places the human's stone and lets the computer answer.
func (g *Controller) SubmitHumanMove(c types.Coord) error {
	switch {
	case g.state == Terminal:
		return ErrGameOver
	case g.state != AwaitingHumanMove || g.toMove != g.human:
		return ErrNotYourTurn
	}
	if err := g.commit(c, g.human); err != nil {
		debugLog.Printf("game=%s rejected human move: %v", g.id, err)
		return err
	}
	if g.state == Terminal {
		return nil
	}
	g.playAI()
	return nil
}

// playAI asks the selector for the computer's move and commits it.
// commit has already declared a draw on a full board, so running out of
// moves here is a bug.
func (g *Controller) playAI() {
	g.state = ComputingAIMove
	start := time.Now()
	dec, ok := Decide(g.board, g.ai, g.human, g.difficulty, g.rng)
	if !ok {
		panic(fmt.Errorf("game=%s: %w while status is %s", g.id, ErrNoLegalMove, g.status))
	}
	debugLog.Printf("game=%s ai %s at %s score=%.1f random=%v difficulty=%s in %s",
		g.id, g.ai, PosToDisplay(dec.Move), dec.Score, dec.Random, g.difficulty, time.Since(start))
	if err := g.commit(dec.Move, g.ai); err != nil {
		panic(fmt.Errorf("game=%s: selector picked an illegal move: %w", g.id, err))
	}
	if g.state != Terminal {
		g.state = AwaitingHumanMove
	}
}

// commit places a stone for real, recomputes the status and notifies.
func (g *Controller) commit(c types.Coord, stone types.Stone) error {
	if _, err := g.board.Place(c, stone); err != nil {
		return err
	}
	g.lastMove = c
	g.toMove = stone.Opponent()

	if line, won := FindFive(g.board, stone); won {
		g.status = types.WonBy(stone)
		g.winningLine = line
	} else if g.board.IsFull() {
		g.status = types.Draw
	}
	if g.status.Terminal() {
		g.state = Terminal
	}
	debugLog.Printf("game=%s move %d %s at %s status=%s", g.id, g.board.Moves(), stone, PosToDisplay(c), g.status)

	if g.moveCallback != nil {
		g.moveCallback(c, stone, g.GetBoardState())
	}
	if g.status.Terminal() && g.endCallback != nil {
		g.endCallback(g.status)
	}
	return nil
}

// Hint returns the move the engine would suggest to the human, scored
// deterministically with the Normal profile.
func (g *Controller) Hint() (types.Coord, bool) {
	if g.state != AwaitingHumanMove {
		return types.NoCoord, false
	}
	return BestMove(g.board, g.human, g.ai, types.Normal, nil)
}

// SetDifficulty changes the level used by the next decision.
func (g *Controller) SetDifficulty(d types.Difficulty) {
	g.difficulty = d.OrDefault()
	debugLog.Printf("game=%s difficulty=%s", g.id, g.difficulty)
}

// Difficulty returns the active level.
func (g *Controller) Difficulty() types.Difficulty {
	return g.difficulty
}

// GetBoardState returns a deep copy of the current game.
func (g *Controller) GetBoardState() *types.BoardState {
	return &types.BoardState{
		MoveNumber:   g.board.Moves(),
		PlayerToMove: g.toMove,
		Status:       g.status,
		Board:        g.board.Grid(),
		LastMove:     g.lastMove,
		WinningLine:  append([]types.Coord(nil), g.winningLine...),
	}
}

// State returns the turn state.
func (g *Controller) State() State {
	return g.state
}

// Status returns the game status.
func (g *Controller) Status() types.GameStatus {
	return g.status
}

// ID returns the id of the current game.
func (g *Controller) ID() string {
	return g.id
}

// IsMyTurn returns true if it's the human player's turn.
func (g *Controller) IsMyTurn() bool {
	return g.state == AwaitingHumanMove && g.toMove == g.human
}

// GetPlayerColor returns the human player's colour.
func (g *Controller) GetPlayerColor() types.Stone {
	return g.human
}

// OnMove registers a callback for when a stone is committed.
func (g *Controller) OnMove(callback func(c types.Coord, stone types.Stone, boardState *types.BoardState)) {
	g.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (g *Controller) OnGameEnd(callback func(status types.GameStatus)) {
	g.endCallback = callback
}
