package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the setup card and its controls.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(95),  // muted wood
	BorderFocus: tcell.PaletteColor(180), // board tan
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(180),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(244),
	Selected:    tcell.PaletteColor(222),
	Unselected:  tcell.PaletteColor(244),
	ButtonFocus: tcell.PaletteColor(137),
	ButtonText:  tcell.PaletteColor(231),
}

func cardStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(MenuColors.CardBG)
}
