package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Rows the card's own decoration uses above its content.
const cardHeaderRows = 5

// MenuCard is a box with rounded borders and a centred title.
type MenuCard struct {
	*tview.Box
	title   string
	focused bool
}

// NewMenuCard creates a card. title is a message key.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

func (c *MenuCard) borderStyle() tcell.Style {
	if c.focused {
		return cardStyle(MenuColors.BorderFocus)
	}
	return cardStyle(MenuColors.Border)
}

// Draw fills the card and draws its frame and title.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < cardHeaderRows {
		return
	}
	border := c.borderStyle()
	bg := cardStyle(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bg)
		}
	}
	c.hline(screen, y, '╭', '╮')
	c.hline(screen, y+height-1, '╰', '╯')
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, border)
		screen.SetContent(x+width-1, row, '│', nil, border)
	}

	if c.title == "" {
		return
	}
	title := tr(c.title)
	titleX := x + (width-textWidth(title)-3)/2
	screen.SetContent(titleX, y+2, '⬡', nil, cardStyle(MenuColors.TitleAccent))
	drawText(screen, titleX+3, y+2, x+width-1, title, cardStyle(MenuColors.Title).Bold(true))
	c.DrawDivider(screen, y+4)
}

// DrawDivider draws a horizontal divider across the card at divY.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	c.hline(screen, divY, '├', '┤')
}

func (c *MenuCard) hline(screen tcell.Screen, row int, left, right rune) {
	x, _, width, _ := c.GetInnerRect()
	style := c.borderStyle()
	screen.SetContent(x, row, left, nil, style)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, row, '─', nil, style)
	}
	screen.SetContent(x+width-1, row, right, nil, style)
}

func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}
