package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a pill-shaped button. The label is a message key.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey activates the button on Enter or space.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter || (event.Key() == tcell.KeyRune && event.Rune() == ' ') {
		b.Activate()
		return true
	}
	return false
}

// Activate runs the button's action.
func (b *MenuButton) Activate() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + tr(b.label)
	}
	return tr(b.label)
}

// Draw renders the button at (x, y) and returns its width.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.Foreground(MenuColors.ButtonText).Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(screen, x+1, y, x+width, label, style)
		return width
	}

	bracketStyle := cardStyle(MenuColors.Border)
	screen.SetContent(x, y, '[', nil, bracketStyle)
	col := drawText(screen, x+1, y, x+width, label, cardStyle(MenuColors.Hint))
	screen.SetContent(col, y, ']', nil, bracketStyle)
	return width
}

// Width is the label width plus one cell on each side.
func (b *MenuButton) Width() int {
	return textWidth(b.text()) + 2
}
