package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// LevelSlider is a horizontal slider over the integers min..max.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	format   func(int) string
	onChange func(int)
}

// NewLevelSlider creates a slider. initial is clamped into range.
func NewLevelSlider(label string, min, max, initial int, onChange func(int)) *LevelSlider {
	return &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		value:    clamp(initial, min, max),
		format:   strconv.Itoa,
		onChange: onChange,
	}
}

// SetFormat sets how the value is printed next to the bar.
func (s *LevelSlider) SetFormat(format func(int) string) *LevelSlider {
	s.format = format
	return s
}

func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey moves the value with the left/right arrows or h/l.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	switch {
	case event.Key() == tcell.KeyLeft, event.Key() == tcell.KeyRune && event.Rune() == 'h':
		s.SetValue(s.value - 1)
	case event.Key() == tcell.KeyRight, event.Key() == tcell.KeyRune && event.Rune() == 'l':
		s.SetValue(s.value + 1)
	default:
		return false
	}
	return true
}

// Draw renders the slider on one row and returns 1.
func (s *LevelSlider) Draw(screen tcell.Screen, x, y, width int) int {
	maxX := x + width
	labelStyle := cardStyle(MenuColors.Label)
	selectedStyle := cardStyle(MenuColors.Selected)
	unselectedStyle := cardStyle(MenuColors.Unselected)

	screen.SetContent(x, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	col := drawText(screen, x+2, y, maxX, tr(s.label), labelStyle) + 2

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	}
	col += 2
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	for i := s.min; i <= s.max && col < maxX; i++ {
		ch, style := '░', unselectedStyle
		if i <= s.value {
			ch, style = '█', selectedStyle
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
	col = drawText(screen, col+1, y, maxX, s.format(s.value), labelStyle)
	if col+1 < maxX {
		screen.SetContent(col+1, y, '▶', nil, arrowStyle)
	}
	return 1
}

func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the value, clamped into range.
func (s *LevelSlider) SetValue(v int) {
	v = clamp(v, s.min, s.max)
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
