package gomoku

import (
	"errors"
	"testing"

	"omok-local/engine"
	"omok-local/types"
)

type placedStone struct {
	c     types.Coord
	stone types.Stone
}

// recorder captures controller notifications.
type recorder struct {
	placed []placedStone
	ended  []types.GameStatus
	events []string
}

func (r *recorder) attach(g *Controller) {
	g.OnMove(func(c types.Coord, stone types.Stone, bs *types.BoardState) {
		r.placed = append(r.placed, placedStone{c, stone})
		r.events = append(r.events, "move")
	})
	g.OnGameEnd(func(status types.GameStatus) {
		r.ended = append(r.ended, status)
		r.events = append(r.events, "end")
	})
}

func newTestController(t *testing.T, cfg engine.GameConfig) (*Controller, *recorder) {
	t.Helper()
	g := NewController(cfg, fixedRand{f: 0.99})
	rec := &recorder{}
	rec.attach(g)
	g.Reset()
	return g, rec
}

// drawOpening fills every cell except (0,0) with a pattern that has no
// five anywhere, ordered Black, White, Black, ... so that Black is to
// move and (0,0) belongs to Black's colour class.
func drawOpening() []types.Coord {
	var blacks, whites []types.Coord
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if row == 0 && col == 0 {
				continue
			}
			if (col/2+row)%2 == 0 {
				blacks = append(blacks, at(row, col))
			} else {
				whites = append(whites, at(row, col))
			}
		}
	}
	out := make([]types.Coord, 0, len(blacks)+len(whites))
	for i := range blacks {
		out = append(out, blacks[i], whites[i])
	}
	return out
}

func TestHumanMoveGetsAnswer(t *testing.T) {
	g, rec := newTestController(t, engine.DefaultConfig())
	if !g.IsMyTurn() {
		t.Fatal("human plays black and should move first")
	}
	if err := g.SubmitHumanMove(at(7, 7)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if len(rec.placed) != 2 {
		t.Fatalf("expected human and computer stones, got %v", rec.placed)
	}
	if rec.placed[0] != (placedStone{at(7, 7), types.Black}) {
		t.Fatalf("unexpected first stone %v", rec.placed[0])
	}
	if rec.placed[1] != (placedStone{at(6, 6), types.White}) {
		t.Fatalf("expected computer reply at (6,6), got %v", rec.placed[1])
	}
	if !g.IsMyTurn() || g.State() != AwaitingHumanMove {
		t.Fatalf("expected to await the human, state %v", g.State())
	}
	bs := g.GetBoardState()
	if bs.MoveNumber != 2 || bs.LastMove != at(6, 6) || bs.PlayerToMove != types.Black {
		t.Fatalf("unexpected snapshot %+v", bs)
	}
}

func TestRejectedMovesLeaveBoardUnchanged(t *testing.T) {
	g, rec := newTestController(t, engine.DefaultConfig())
	if err := g.SubmitHumanMove(at(7, 7)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	before := *g.board
	if err := g.SubmitHumanMove(at(7, 7)); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if err := g.SubmitHumanMove(at(15, 3)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if *g.board != before {
		t.Fatal("rejected moves changed the board")
	}
	if len(rec.placed) != 2 {
		t.Fatalf("rejected moves should not notify, got %v", rec.placed)
	}
	if !g.IsMyTurn() {
		t.Fatal("human should be able to retry")
	}
}

func TestHumanWinStopsGame(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Opening = []types.Coord{
		at(7, 3), at(0, 0),
		at(7, 4), at(0, 2),
		at(7, 5), at(0, 4),
		at(7, 6), at(0, 6),
	}
	g, rec := newTestController(t, cfg)
	if err := g.SubmitHumanMove(at(7, 7)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Status() != types.BlackWon || g.State() != Terminal {
		t.Fatalf("expected black win, got %v / %v", g.Status(), g.State())
	}
	if g.board.Moves() != 9 {
		t.Fatalf("computer should not move after the human won, %d stones", g.board.Moves())
	}
	if len(rec.ended) != 1 || rec.ended[0] != types.BlackWon {
		t.Fatalf("expected one gameEnded(BlackWon), got %v", rec.ended)
	}
	if last := rec.events[len(rec.events)-2:]; last[0] != "move" || last[1] != "end" {
		t.Fatalf("stonePlaced should precede gameEnded, got %v", rec.events)
	}
	if got := g.GetBoardState().WinningLine; len(got) != 5 || got[0] != at(7, 3) {
		t.Fatalf("unexpected winning line %v", got)
	}
	if err := g.SubmitHumanMove(at(10, 10)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestComputerWins(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Opening = []types.Coord{
		at(14, 0), at(7, 3),
		at(14, 2), at(7, 4),
		at(14, 4), at(7, 5),
		at(14, 6), at(7, 6),
	}
	g, rec := newTestController(t, cfg)
	if err := g.SubmitHumanMove(at(14, 10)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Status() != types.WhiteWon {
		t.Fatalf("expected white win, got %v", g.Status())
	}
	if len(rec.ended) != 1 || rec.ended[0] != types.WhiteWon {
		t.Fatalf("expected gameEnded(WhiteWon), got %v", rec.ended)
	}
	if g.IsMyTurn() {
		t.Fatal("no turns after the game ended")
	}
}

func TestDrawOnFullBoard(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Opening = drawOpening()
	g, rec := newTestController(t, cfg)
	if g.Status() != types.InProgress || !g.IsMyTurn() {
		t.Fatalf("opening should leave one cell for black, got %v", g.Status())
	}
	if g.board.Moves() != Size*Size-1 {
		t.Fatalf("expected %d stones, got %d", Size*Size-1, g.board.Moves())
	}

	if err := g.SubmitHumanMove(at(0, 0)); err != nil {
		t.Fatalf("last move failed: %v", err)
	}
	if g.Status() != types.Draw || g.State() != Terminal {
		t.Fatalf("expected draw, got %v / %v", g.Status(), g.State())
	}
	if len(rec.ended) != 1 || rec.ended[0] != types.Draw {
		t.Fatalf("expected gameEnded(Draw), got %v", rec.ended)
	}

	before := *g.board
	for _, c := range []types.Coord{at(0, 0), at(7, 7), at(-1, 3)} {
		if err := g.SubmitHumanMove(c); !errors.Is(err, ErrGameOver) {
			t.Fatalf("expected ErrGameOver for %v, got %v", c, err)
		}
	}
	if *g.board != before {
		t.Fatal("moves after the draw changed the board")
	}
}

func TestComputerOpensWhenHumanIsWhite(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.PlayerColor = types.White
	g, rec := newTestController(t, cfg)
	if len(rec.placed) != 1 || rec.placed[0].stone != types.Black {
		t.Fatalf("expected the computer to open with black, got %v", rec.placed)
	}
	if rec.placed[0].c != at(0, 0) {
		t.Fatalf("empty board scores tie, expected (0,0), got %v", rec.placed[0].c)
	}
	if !g.IsMyTurn() || g.GetPlayerColor() != types.White {
		t.Fatal("human should be white and to move")
	}
}

func TestResetClearsBoard(t *testing.T) {
	g, rec := newTestController(t, engine.DefaultConfig())
	firstID := g.ID()
	if err := g.SubmitHumanMove(at(3, 3)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	g.Reset()
	if g.board.Moves() != 0 || g.Status() != types.InProgress || !g.IsMyTurn() {
		t.Fatal("reset should start a fresh game awaiting the human")
	}
	if g.ID() == firstID {
		t.Fatal("reset should start a game with a new id")
	}
	if g.GetBoardState().LastMove != types.NoCoord {
		t.Fatal("reset should clear the last move")
	}
	if len(rec.ended) != 0 {
		t.Fatal("reset is not a game end")
	}
}

func TestSetDifficulty(t *testing.T) {
	g, _ := newTestController(t, engine.DefaultConfig())
	if g.Difficulty() != types.Normal {
		t.Fatalf("expected Normal by default, got %v", g.Difficulty())
	}
	g.SetDifficulty(types.Hard)
	if g.Difficulty() != types.Hard {
		t.Fatalf("expected Hard, got %v", g.Difficulty())
	}
	g.SetDifficulty(0)
	if g.Difficulty() != types.Normal {
		t.Fatalf("unset difficulty should fall back to Normal, got %v", g.Difficulty())
	}
}

func TestHint(t *testing.T) {
	g, _ := newTestController(t, engine.DefaultConfig())
	if err := g.SubmitHumanMove(at(7, 7)); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	before := *g.board
	hint, ok := g.Hint()
	if !ok || !hint.Valid() || g.board.At(hint) != types.Empty {
		t.Fatalf("expected an empty cell as hint, got %v", hint)
	}
	if *g.board != before {
		t.Fatal("hint changed the board")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestController(t, engine.DefaultConfig())
	bs := g.GetBoardState()
	bs.Board[5][5] = types.White
	if g.board.At(at(5, 5)) != types.Empty {
		t.Fatal("modifying a snapshot changed the game")
	}
}

func TestNoLegalMoveIsFatal(t *testing.T) {
	g, _ := newTestController(t, engine.DefaultConfig())
	// fill the board without going through commit, so no Draw is recorded
	for _, c := range g.board.EmptyCells() {
		if _, err := g.board.Place(c, types.Black); err != nil {
			t.Fatalf("place %v: %v", c, err)
		}
	}

	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatal("expected a panic with an error")
		}
		if !errors.Is(err, ErrNoLegalMove) {
			t.Fatalf("expected ErrNoLegalMove, got %v", err)
		}
	}()
	g.playAI()
}
