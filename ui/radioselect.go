package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption is one choice of a RadioSelect. Label and Description are
// message keys and are translated when drawn.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a radio button group.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a radio group with option initial selected.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey moves the selection with the arrow keys or j/k. It returns
// true if the key was used.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	delta := 0
	switch event.Key() {
	case tcell.KeyUp:
		delta = -1
	case tcell.KeyDown:
		delta = 1
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			delta = -1
		case 'j':
			delta = 1
		}
	}
	if delta == 0 {
		return false
	}
	r.SetSelected(r.selected + delta)
	return true
}

// Height is the number of rows Draw uses.
func (r *RadioSelect) Height() int {
	return len(r.options) + 1
}

// Draw renders the group at (x, y) and returns the rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	maxX := x + width
	labelStyle := cardStyle(MenuColors.Label)
	selectedStyle := cardStyle(MenuColors.Selected)
	unselectedStyle := cardStyle(MenuColors.Unselected)
	hintStyle := cardStyle(MenuColors.Hint)

	screen.SetContent(x, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	drawText(screen, x+2, y, maxX, tr(r.label), labelStyle)

	for i, opt := range r.options {
		row := y + 1 + i
		col := x + 2
		if r.focused && i == r.selected {
			screen.SetContent(col, row, '▸', nil, selectedStyle)
		}
		col += 2

		style, bullet := unselectedStyle, '○'
		if i == r.selected {
			style, bullet = selectedStyle, '●'
		}
		screen.SetContent(col, row, bullet, nil, style)
		col = drawText(screen, col+2, row, maxX, tr(opt.Label), style)
		if opt.Description != "" {
			drawText(screen, col+1, row, maxX, tr(opt.Description), hintStyle)
		}
	}
	return r.Height()
}

func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected selects index, ignoring indexes out of range.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) || index == r.selected {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}
