package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"omok-local/config"
	"omok-local/types"
)

// The pause slider moves in steps of this many milliseconds.
const delayStepMs = 250

var difficultyOptions = []RadioOption{
	{Label: "Easy", Description: "plays often at random"},
	{Label: "Normal", Description: "balanced"},
	{Label: "Hard", Description: "attacks and defends hard"},
}

var colorOptions = []RadioOption{
	{Label: "Black", Description: "moves first"},
	{Label: "White", Description: "moves second"},
}

var languageOptions = []RadioOption{
	{Label: "English"},
	{Label: "한국어"},
}

// setupField is a control on the setup card.
type setupField interface {
	SetFocused(bool)
	HandleKey(*tcell.EventKey) bool
	Draw(screen tcell.Screen, x, y, width int) int
}

// GameSetupUI is the new game screen. Choices are written to the
// config's game section before onStart runs.
type GameSetupUI struct {
	*MenuCard
	cfg      *config.Config
	onCancel func()

	fields  []setupField
	buttons []*MenuButton
	focus   int // index into fields, or len(fields) for the button row
	button  int
}

// NewGameSetup creates the setup screen for cfg.
func NewGameSetup(cfg *config.Config, onStart func(), onCancel func(), onColors func()) *GameSetupUI {
	s := &GameSetupUI{
		MenuCard: NewMenuCard("O M O K"),
		cfg:      cfg,
		onCancel: onCancel,
	}

	difficulty := NewRadioSelect("Difficulty", difficultyOptions, int(cfg.Game.Difficulty.OrDefault()-types.Easy), func(i int) {
		s.cfg.Game.Difficulty = types.Difficulties[i]
	})
	colorIndex := 0
	if cfg.Game.Stone() == types.White {
		colorIndex = 1
	}
	color := NewRadioSelect("Your colour", colorOptions, colorIndex, func(i int) {
		s.cfg.Game.PlayerColor = config.PlayerColors[i]
	})
	delay := NewLevelSlider("Computer pause", 0, config.MaxAIDelayMs/delayStepMs, cfg.Game.AIDelayMs/delayStepMs, func(v int) {
		s.cfg.Game.AIDelayMs = v * delayStepMs
	}).SetFormat(func(v int) string {
		return fmt.Sprintf("%.2fs", float64(v*delayStepMs)/1000)
	})
	langIndex := 0
	for i, l := range config.Languages {
		if l == cfg.Game.Language {
			langIndex = i
		}
	}
	lang := NewRadioSelect("Language", languageOptions, langIndex, func(i int) {
		s.cfg.Game.Language = config.Languages[i]
		SetLanguage(s.cfg.Game.Language)
	})
	s.fields = []setupField{difficulty, color, delay, lang}

	s.buttons = []*MenuButton{
		NewMenuButton("Start", true, onStart),
		NewMenuButton("Board colour", false, onColors),
		NewMenuButton("Quit", false, onCancel),
	}
	s.setFocus(0)
	return s
}

func (s *GameSetupUI) setFocus(i int) {
	n := len(s.fields) + 1
	s.focus = (i%n + n) % n
	for j, f := range s.fields {
		f.SetFocused(j == s.focus)
	}
	for j, b := range s.buttons {
		b.SetFocused(s.focus == len(s.fields) && j == s.button)
	}
}

// Height is the number of rows the card needs.
func (s *GameSetupUI) Height() int {
	rows := cardHeaderRows + 1
	for _, f := range s.fields {
		switch f := f.(type) {
		case *RadioSelect:
			rows += f.Height() + 1
		default:
			rows += 2
		}
	}
	// buttons, gap, help line, bottom border
	return rows + 4
}

// Draw renders the card and its controls.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.SetFocused(s.HasFocus())
	s.MenuCard.Draw(screen)
	x, y, width, height := s.GetInnerRect()
	if width < 20 || height < s.Height() {
		return
	}

	left, inner := x+3, width-6
	row := y + cardHeaderRows + 1
	for _, f := range s.fields {
		row += f.Draw(screen, left, row, inner) + 1
	}

	col := left
	for _, b := range s.buttons {
		col += b.Draw(screen, col, row) + 2
	}

	help := tr("Tab next · ↑↓←→ change · ⏎ start")
	drawText(screen, x+(width-textWidth(help))/2, y+height-2, x+width-1, help, cardStyle(MenuColors.Hint))
}

// InputHandler moves between controls with Tab and passes other keys to
// the focused control.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyTab:
			s.setFocus(s.focus + 1)
			return
		case tcell.KeyBacktab:
			s.setFocus(s.focus - 1)
			return
		case tcell.KeyEsc:
			s.onCancel()
			return
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			s.onCancel()
			return
		}

		if s.focus == len(s.fields) {
			switch event.Key() {
			case tcell.KeyLeft:
				s.button = (s.button + len(s.buttons) - 1) % len(s.buttons)
				s.setFocus(s.focus)
			case tcell.KeyRight:
				s.button = (s.button + 1) % len(s.buttons)
				s.setFocus(s.focus)
			default:
				s.buttons[s.button].HandleKey(event)
			}
			return
		}
		if s.fields[s.focus].HandleKey(event) {
			return
		}
		if event.Key() == tcell.KeyEnter {
			s.buttons[0].Activate()
		}
	})
}
