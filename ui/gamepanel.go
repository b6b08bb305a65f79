package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"omok-local/engine"
	"omok-local/engine/gomoku"
	"omok-local/types"
)

// Number of moves listed in the info panel.
const visibleMoves = 12

// MoveEntry is one stone in the move list.
type MoveEntry struct {
	Coord types.Coord
	Stone types.Stone
}

// gameIdentifier is implemented by engines that give each game an id.
type gameIdentifier interface {
	ID() string
}

// GameInfoPanel shows the level, move count and recent moves beside the board.
type GameInfoPanel struct {
	box *tview.TextView
}

func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{box: tview.NewTextView()}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// Update redraws the panel for the given game.
func (p *GameInfoPanel) Update(bs *types.BoardState, eng engine.GameEngine, history []MoveEntry) {
	if bs == nil || eng == nil {
		p.box.SetText("")
		return
	}
	id := ""
	if ider, ok := eng.(gameIdentifier); ok {
		id = ider.ID()
	}
	p.box.SetText(renderInfo(bs.MoveNumber, eng.Difficulty(), eng.GetPlayerColor(), id, history))
}

func renderInfo(moveNumber int, level types.Difficulty, human types.Stone, id string, history []MoveEntry) string {
	var b strings.Builder
	rule := "[dimgray]──────────────────────[-:-:-]\n"

	fmt.Fprintf(&b, "[white::b]%s[-:-:-]\n", tr("Game Info"))
	b.WriteString(rule)
	fmt.Fprintf(&b, "[white]%s[-:-:-] %s\n", tr("Level:"), difficultyName(level))
	fmt.Fprintf(&b, "[white]%s[-:-:-] %s\n", tr("You:"), stoneName(human))
	fmt.Fprintf(&b, "[white]%s[-:-:-] %d\n", tr("Move:"), moveNumber)
	if len(id) >= 8 {
		fmt.Fprintf(&b, "[dimgray]%s %s[-]\n", tr("Game:"), id[:8])
	}

	if len(history) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\n[white::b]%s[-:-:-]\n", tr("Moves"))
	b.WriteString(rule)

	start := 0
	if len(history) > visibleMoves {
		start = len(history) - visibleMoves
	}
	for i := start; i < len(history); i++ {
		m := history[i]
		color := "[white]B[-]"
		if m.Stone == types.White {
			color = "[dimgray]W[-]"
		}
		marker := " "
		if i == len(history)-1 {
			marker = "[white]>[-]"
		}
		fmt.Fprintf(&b, "%s[dimgray]%3d.[-] %s %s\n", marker, i+1, color, gomoku.PosToDisplay(m.Coord))
	}
	if start > 0 {
		fmt.Fprintf(&b, "[dimgray]  %s[-]\n", tr("··· %d earlier", start))
	}
	return b.String()
}

// CreateGameLayout creates the game layout with the board, info panel and status bar.
func CreateGameLayout(board *OmokBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm centres p in a box of the given size.
func CreateCenteredForm(p tview.Primitive, width, height int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, height, 0, true).
		AddItem(nil, 0, 1, false)
}

// RebuildNormalLayout restores the board | info panel layout with the status bar.
func RebuildNormalLayout(gameFrame *tview.Flex, board *OmokBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.Update(board.BoardState, board.eng, board.history)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout shows only the centred board.
func BuildFocusLayout(gameFrame *tview.Flex, board *OmokBoardUI) {
	gameFrame.Clear()
	board.infoPanel = nil

	width := gomoku.Size*2 + labelWidth
	height := gomoku.Size + 2
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(CreateCenteredForm(board.Box, width, height), 0, 1, true)
}
