package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"omok-local/config"
	"omok-local/types"
)

type namedColor struct {
	code int
	name string
}

// Board colours, mostly wood tones.
var boardColors = []namedColor{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{222, "Gold"},
	{220, "Bright Yellow"},
	{214, "Orange Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{137, "Walnut"},
	{136, "Dark Brown"},
	{252, "Light Gray"},
	{248, "Medium Gray"},
	{188, "Light Beige"},
	{223, "Peach"},
}

// Line colours, dark enough to read on the board colours.
var lineColors = []namedColor{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{232, "Black"},
	{240, "Gray"},
	{16, "True Black"},
}

// previewSize is the edge of the sample board.
const previewSize = 7

// previewStones is a sample position: Black has just made five on the
// diagonal past White's stones.
var previewStones = map[types.Coord]types.Stone{
	{Row: 1, Col: 1}: types.Black,
	{Row: 2, Col: 2}: types.Black,
	{Row: 3, Col: 3}: types.Black,
	{Row: 4, Col: 4}: types.Black,
	{Row: 5, Col: 5}: types.Black,
	{Row: 2, Col: 3}: types.White,
	{Row: 3, Col: 2}: types.White,
	{Row: 4, Col: 3}: types.White,
	{Row: 1, Col: 4}: types.White,
}

// ColorConfigUI picks board and line colours with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	status    string

	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool
}

func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if c, ok := cc.colorAt(index); ok {
			if cc.editingLine {
				cc.selectedLineColor = c
			} else {
				cc.selectedBoardColor = c
			}
		}
	})
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if _, ok := cc.colorAt(index); !ok {
			return
		}
		if cc.editingLine {
			cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
			cc.save()
			cc.editingLine = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		if cc.save() {
			onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)
	return cc
}

func (cc *ColorConfigUI) choices() []namedColor {
	if cc.editingLine {
		return lineColors
	}
	return boardColors
}

func (cc *ColorConfigUI) colorAt(index int) (int, bool) {
	colors := cc.choices()
	if index < 0 || index >= len(colors) {
		return 0, false
	}
	return colors[index].code, true
}

func (cc *ColorConfigUI) save() bool {
	if err := cc.cfg.Save(); err != nil {
		cc.status = tr("Could not save colours: %v", err)
		return false
	}
	cc.status = ""
	return true
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()
	current := cc.selectedBoardColor
	title := tr("Select board colour (Tab: line colour)")
	if cc.editingLine {
		current = cc.selectedLineColor
		title = tr("Select line colour (Tab: board colour)")
	}
	cc.colorList.SetTitle(" " + title + " ")
	for i, c := range cc.choices() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)", tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	cc.preview.SetTitle(" " + tr("Board preview") + " ")
	if width < previewSize*2+4 || height < previewSize+4 {
		return x, y, width, height
	}
	board := tcell.PaletteColor(cc.selectedBoardColor)
	line := tcell.StyleDefault.Background(board).Foreground(tcell.PaletteColor(cc.selectedLineColor))
	stoneStyles := map[types.Stone]tcell.Style{
		types.Black: tcell.StyleDefault.Background(board).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)),
		types.White: tcell.StyleDefault.Background(board).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)),
	}
	theme := cc.cfg.Theme
	theme.UseGridLines = true

	left, top := x+2, y+1
	for row := 0; row < previewSize; row++ {
		for col := 0; col < previewSize; col++ {
			c := types.Coord{Row: row, Col: col}
			ch, style := gridRune(row, col, previewSize, previewSize, c == types.Coord{Row: 3, Col: 3}, theme), line
			stone, hasStone := previewStones[c]
			if hasStone {
				ch, style = theme.Symbols.BlackStone, stoneStyles[stone]
				if stone == types.White {
					ch = theme.Symbols.WhiteStone
				}
			}
			screen.SetContent(left+col*2, top+row, ch, nil, style)
			if col < previewSize-1 {
				connector := '─'
				if _, right := previewStones[types.Coord{Row: row, Col: col + 1}]; right || hasStone {
					connector = ' '
				}
				screen.SetContent(left+col*2+1, top+row, connector, nil, line)
			}
		}
	}

	info := tr("Board: %d  Line: %d", cc.selectedBoardColor, cc.selectedLineColor)
	drawText(screen, left, top+previewSize+1, x+width-1, info, tcell.StyleDefault)
	if cc.status != "" {
		drawText(screen, left, top+previewSize+2, x+width-1, cc.status, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	return x, y, width, height
}

func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between editing the board and the line colour.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
