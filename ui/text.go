package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s at (x, y) without passing maxX and returns the
// column after the last cell written. Wide runes take two cells.
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// textWidth is the number of terminal cells s occupies.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
