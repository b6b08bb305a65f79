// Package ui specifies custom controls for tview to play five in a row in the terminal.
package ui

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"omok-local/config"
	"omok-local/engine"
	"omok-local/engine/gomoku"
	"omok-local/types"
)

// Columns left of the grid used by the row labels.
const labelWidth = 4

var starPoints = map[types.Coord]bool{
	{Row: 3, Col: 3}:   true,
	{Row: 3, Col: 11}:  true,
	{Row: 7, Col: 7}:   true,
	{Row: 11, Col: 3}:  true,
	{Row: 11, Col: 11}: true,
}

// palette holds the theme colours resolved to tcell colours.
type palette struct {
	board, boardAlt tcell.Color
	black, white    tcell.Color
	line            tcell.Color
	cursorFG        tcell.Color
	cursorBG        tcell.Color
	lastPlayed      tcell.Color
	winningLine     tcell.Color
	hint            tcell.Color
}

func newPalette(c config.ConfigColors) palette {
	return palette{
		board:       tcell.PaletteColor(c.BoardColor),
		boardAlt:    tcell.PaletteColor(c.BoardColorAlt),
		black:       tcell.PaletteColor(c.BlackColor),
		white:       tcell.PaletteColor(c.WhiteColor),
		line:        tcell.PaletteColor(c.LineColor),
		cursorFG:    tcell.PaletteColor(c.CursorColorFG),
		cursorBG:    tcell.PaletteColor(c.CursorColorBG),
		lastPlayed:  tcell.PaletteColor(c.LastPlayedColorBG),
		winningLine: tcell.PaletteColor(c.WinningLineBG),
		hint:        tcell.PaletteColor(c.HintColorBG),
	}
}

// pendingReveal is a board update waiting to be shown.
type pendingReveal struct {
	delayed bool
	apply   func()
}

// OmokBoardUI draws the board, takes the human's moves and shows the
// engine's answers after a short pause.
type OmokBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	app        *tview.Application
	eng        engine.GameEngine
	colors     palette
	infoPanel  *GameInfoPanel
	focusMode  bool
	finished   bool
	selected   types.Coord
	hintMove   types.Coord
	notice     string
	history    []MoveEntry

	// grid origin from the last draw, for mouse mapping
	originX, originY int

	aiDelay    time.Duration
	loading    bool
	pending    []pendingReveal
	generation int
	after      func(d time.Duration, fn func())
	onEnd      func(status types.GameStatus)
}

func NewOmokBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *OmokBoardUI {
	board := &OmokBoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(gomoku.Size),
		hint:       hint,
		app:        app,
		selected:   types.NoCoord,
		hintMove:   types.NoCoord,
	}
	board.after = func(d time.Duration, fn func()) {
		time.AfterFunc(d, func() {
			app.QueueUpdateDraw(fn)
		})
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		c, ok := board.CellAt(event.Position())
		if !ok {
			return action, event
		}
		board.selected = c
		board.PlayMove(c)
		return action, nil
	})
	return board
}

func (g *OmokBoardUI) SetConfig(c *config.Config) {
	g.cfg = c
	g.colors = newPalette(c.Theme.Colors)
	g.aiDelay = time.Duration(c.Game.AIDelayMs) * time.Millisecond
}

// OnGameEnd registers a callback run once the final stone is shown.
func (g *OmokBoardUI) OnGameEnd(fn func(status types.GameStatus)) {
	g.onEnd = fn
}

// StartGame attaches e and resets it. Stones placed during the reset
// (opening and the computer's first move) are shown at once.
func (g *OmokBoardUI) StartGame(e engine.GameEngine) {
	g.eng = e
	g.generation++
	g.pending = nil
	g.finished = false
	g.history = nil
	g.notice = ""
	g.hintMove = types.NoCoord
	g.ResetSelection()

	e.OnMove(func(c types.Coord, stone types.Stone, boardState *types.BoardState) {
		g.reveal(stone != e.GetPlayerColor(), func() {
			g.history = append(g.history, MoveEntry{Coord: c, Stone: stone})
			g.BoardState = boardState
			g.refreshHint()
		})
	})
	e.OnGameEnd(func(status types.GameStatus) {
		g.reveal(false, func() {
			g.finished = true
			g.ResetSelection()
			g.refreshHint()
			if g.onEnd != nil {
				g.onEnd(status)
			}
		})
	})

	g.loading = true
	e.Reset()
	g.loading = false
	g.BoardState = e.GetBoardState()
	g.refreshHint()
}

// Restart starts a new game on the current engine.
func (g *OmokBoardUI) Restart() {
	if g.eng != nil {
		g.StartGame(g.eng)
	}
}

// reveal runs apply now, or queues it behind pending reveals. Delayed
// reveals wait for the computer pause first.
func (g *OmokBoardUI) reveal(delayed bool, apply func()) {
	if g.loading || g.aiDelay <= 0 {
		delayed = false
	}
	if !delayed && len(g.pending) == 0 {
		apply()
		return
	}
	g.pending = append(g.pending, pendingReveal{delayed: delayed, apply: apply})
	if len(g.pending) == 1 {
		g.drain()
	}
}

func (g *OmokBoardUI) drain() {
	for len(g.pending) > 0 {
		next := g.pending[0]
		if next.delayed {
			gen := g.generation
			g.after(g.aiDelay, func() {
				if gen != g.generation || len(g.pending) == 0 {
					return
				}
				g.pending[0].delayed = false
				g.drain()
			})
			return
		}
		g.pending = g.pending[1:]
		next.apply()
	}
}

// Busy reports whether a computer move is still waiting to be shown.
func (g *OmokBoardUI) Busy() bool {
	return len(g.pending) > 0
}

// PlayMove submits the human's move at c.
func (g *OmokBoardUI) PlayMove(c types.Coord) {
	if g.finished || g.eng == nil || g.Busy() || !g.eng.IsMyTurn() {
		return
	}
	g.hintMove = types.NoCoord
	g.notice = ""
	if err := g.eng.SubmitHumanMove(c); err != nil {
		switch {
		case errors.Is(err, gomoku.ErrOccupied):
			g.notice = tr("That point is taken")
		case errors.Is(err, gomoku.ErrOutOfBounds):
			g.notice = tr("That point is off the board")
		}
		g.refreshHint()
	}
}

// ShowHint moves the cursor to the engine's suggestion for the human.
func (g *OmokBoardUI) ShowHint() {
	if g.finished || g.eng == nil || g.Busy() {
		return
	}
	c, ok := g.eng.Hint()
	if !ok {
		return
	}
	g.hintMove = c
	g.selected = c
	g.notice = tr("Hint: %s", gomoku.PosToDisplay(c))
	g.refreshHint()
}

// CycleDifficulty switches to the next level between turns.
func (g *OmokBoardUI) CycleDifficulty() {
	if g.eng == nil || g.Busy() {
		return
	}
	g.eng.SetDifficulty(g.eng.Difficulty().Next())
	g.notice = tr("Difficulty: %s", difficultyName(g.eng.Difficulty()))
	g.refreshHint()
}

func (g *OmokBoardUI) SelectedTile() (types.Coord, bool) {
	return g.selected, g.selected.Valid()
}

// MoveSelection moves the cursor by (dRow, dCol), starting from the last
// move or the centre when nothing is selected.
func (g *OmokBoardUI) MoveSelection(dRow, dCol int) {
	if g.finished {
		g.ResetSelection()
		return
	}
	if !g.selected.Valid() {
		g.selected = g.BoardState.LastMove
		if !g.selected.Valid() {
			g.selected = types.Coord{Row: gomoku.Size / 2, Col: gomoku.Size / 2}
		}
		return
	}
	next := types.Coord{Row: g.selected.Row + dRow, Col: g.selected.Col + dCol}
	if next.Valid() {
		g.selected = next
	}
}

func (g *OmokBoardUI) ResetSelection() {
	g.selected = types.NoCoord
}

// CellAt maps a screen position to the board point drawn there. Each
// point is two columns wide; the second column also selects it.
func (g *OmokBoardUI) CellAt(screenX, screenY int) (types.Coord, bool) {
	dx, dy := screenX-g.originX, screenY-g.originY
	if dx < 0 || dy < 0 {
		return types.NoCoord, false
	}
	c := types.Coord{Row: dy, Col: dx / 2}
	if !c.Valid() {
		return types.NoCoord, false
	}
	return c, true
}

func (g *OmokBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

func (g *OmokBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *OmokBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *OmokBoardUI) IsFinished() bool {
	return g.finished
}

func (g *OmokBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	bs := g.BoardState
	if bs == nil || bs.Width() == 0 {
		return x, y, 1, 1
	}
	g.originX, g.originY = x+labelWidth, y
	theme := g.cfg.Theme

	for row := 0; row < bs.Height(); row++ {
		for col := 0; col < bs.Width(); col++ {
			c := types.Coord{Row: row, Col: col}
			stone := bs.Board[row][col]

			bg := g.colors.board
			if (row+col)%2 == 1 {
				bg = g.colors.boardAlt
			}
			fg := g.colors.line
			ch := gridRune(row, col, bs.Height(), bs.Width(), starPoints[c], theme)
			switch stone {
			case types.Black:
				fg, ch = g.colors.black, theme.Symbols.BlackStone
			case types.White:
				fg, ch = g.colors.white, theme.Symbols.WhiteStone
			}

			switch {
			case bs.OnWinningLine(c):
				bg = g.colors.winningLine
			case c == g.selected:
				if theme.DrawCursorBackground {
					bg = g.colors.cursorBG
				} else if stone == types.Empty {
					fg, ch = g.colors.cursorFG, theme.Symbols.Cursor
				}
			case c == g.hintMove:
				bg = g.colors.hint
			case c == bs.LastMove && theme.DrawLastPlayedBackground:
				bg = g.colors.lastPlayed
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(g.originX+col*2, y+row, ch, nil, style)
			connector := ' '
			if theme.UseGridLines && col < bs.Width()-1 && stone == types.Empty && bs.Board[row][col+1] == types.Empty {
				connector = '─'
			}
			screen.SetContent(g.originX+col*2+1, y+row, connector, nil, tcell.StyleDefault.Background(bg).Foreground(g.colors.line))
		}
	}
	g.drawLabels(screen, x, y)
	return x, y, bs.Width()*2 + labelWidth, bs.Height() + 2
}

// gridRune returns the box-drawing rune for an empty point.
func gridRune(row, col, height, width int, star bool, theme config.Theme) rune {
	if !theme.UseGridLines {
		return '·'
	}
	if star {
		return theme.Symbols.StarPoint
	}
	top, bottom := row == 0, row == height-1
	left, right := col == 0, col == width-1
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	}
	return '┼'
}

// drawLabels draws A-O below the grid and 15-1 beside it, highlighting
// the cursor's and the last move's row and column.
func (g *OmokBoardUI) drawLabels(screen tcell.Screen, x, y int) {
	bs := g.BoardState
	cursor := tcell.StyleDefault.Background(g.colors.cursorBG)
	last := tcell.StyleDefault.Background(g.colors.lastPlayed)
	pick := func(onCursor, onLast bool) tcell.Style {
		switch {
		case onCursor:
			return cursor
		case onLast:
			return last
		}
		return tcell.StyleDefault
	}

	for col := 0; col < bs.Width(); col++ {
		style := pick(col == g.selected.Col, col == bs.LastMove.Col)
		screen.SetContent(g.originX+col*2, y+bs.Height()+1, rune('A'+col), nil, style)
		screen.SetContent(g.originX+col*2+1, y+bs.Height()+1, ' ', nil, style)
	}
	for row := 0; row < bs.Height(); row++ {
		style := pick(row == g.selected.Row, row == bs.LastMove.Row)
		label := gomoku.Size - row
		tens := ' '
		if label >= 10 {
			tens = rune('0' + label/10)
		}
		screen.SetContent(x+1, y+row, tens, nil, style)
		screen.SetContent(x+2, y+row, rune('0'+label%10), nil, style)
	}
}

func (g *OmokBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.Update(g.BoardState, g.eng, g.history)
	}
	if g.hint == nil {
		return
	}
	if g.focusMode {
		g.hint.SetText("  " + tr("f to toggle"))
		return
	}
	g.hint.SetText(g.statusText())
}

// statusText is the status bar content for the current game.
func (g *OmokBoardUI) statusText() string {
	if g.finished && g.eng != nil {
		return tr("─── Game Complete ───") + "  " +
			tr("Result: %s", outcomeText(g.BoardState.Status, g.eng.GetPlayerColor())) + "\n  " +
			tr("r restart · q return to menu")
	}

	turn := "  " + tr("◌ Thinking...")
	if g.eng != nil && g.eng.IsMyTurn() && !g.Busy() {
		human := g.eng.GetPlayerColor()
		mark := "●"
		if human == types.White {
			mark = "○"
		}
		turn = "  " + tr("%s Your move (%s)", mark, stoneName(human))
	}
	if g.notice != "" {
		turn += "   " + g.notice
	}
	return turn + "\n  " + tr("hjkl/↑↓←→ move  ⏎/click play  ? hint  d level  f focus  q quit")
}
