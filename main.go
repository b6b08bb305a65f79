// omok-local is a terminal application to play five in a row against the computer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"omok-local/config"
	"omok-local/engine"
	"omok-local/engine/gomoku"
	"omok-local/types"
	"omok-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagDifficulty = flag.String("difficulty", "", "Computer difficulty (easy, normal or hard)")
	flagColor      = flag.String("color", "", "Player color (black or white)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagLang       = flag.String("lang", "", "Interface language (en or ko)")
	flagSeed       = flag.Int64("seed", 0, "Random seed for the computer (0 uses the clock)")
	flagOpen       = flag.String("open", "", "Opening stones, alternating from Black, e.g. H8,H9,J8")
	flagDebug      = flag.Bool("debug", false, "Write a debug log to the state directory")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.OmokBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var opening []types.Coord

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("omok-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	// the terminal belongs to tview from here on
	log.SetOutput(io.Discard)
	if *flagDebug {
		closeLog, err := openDebugLog()
		if err != nil {
			panic(err)
		}
		defer closeLog()
	}
	ui.SetLanguage(cfg.Game.Language)

	quickStart := *flagQuickStart || *flagDifficulty != "" || *flagColor != "" || *flagOpen != "" || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● omok ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewOmokBoard(app, cfg, gameHint)
	gameBoard.OnGameEnd(showResult)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if _, ok := gameBoard.SelectedTile(); ok {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			if c, ok := gameBoard.SelectedTile(); ok {
				gameBoard.PlayMove(c)
			}
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			case '?':
				gameBoard.ShowHint()
			case 'd':
				gameBoard.CycleDifficulty()
			case 'r':
				if gameBoard.IsFinished() {
					gameBoard.Restart()
				}
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(cfg,
		func() {
			if err := cfg.Save(); err != nil {
				log.Printf("save config: %v", err)
			}
			startGame()
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI, 64, setupUI.Height()), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame()
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame starts a game with the current settings.
func startGame() {
	gameBoard.SetConfig(cfg)
	eng := gomoku.NewController(engine.GameConfig{
		PlayerColor: cfg.Game.Stone(),
		Difficulty:  cfg.Game.Difficulty,
		Seed:        *flagSeed,
		Opening:     opening,
	}, nil)
	gameBoard.StartGame(eng)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}

// showResult opens the play-again dialog once the last stone is shown.
func showResult(status types.GameStatus) {
	modal := ui.NewResultDialog(status, cfg.Game.Stone(),
		func() {
			rootPage.RemovePage("result")
			gameBoard.Restart()
			app.SetFocus(gameBoard.Box)
		},
		func() {
			rootPage.RemovePage("result")
			rootPage.SwitchToPage("setup")
		},
		func() {
			app.Stop()
		},
	)
	rootPage.AddPage("result", modal, true, true)
}

// applyFlags overrides the loaded config with command-line flags.
func applyFlags(c *config.Config) error {
	if *flagDifficulty != "" {
		d := types.ParseDifficulty(*flagDifficulty)
		if !d.Valid() {
			return fmt.Errorf("unknown difficulty %q", *flagDifficulty)
		}
		c.Game.Difficulty = d
	}
	switch *flagColor {
	case "":
	case "black", "b":
		c.Game.PlayerColor = "black"
	case "white", "w":
		c.Game.PlayerColor = "white"
	default:
		return fmt.Errorf("unknown color %q", *flagColor)
	}
	if *flagLang != "" {
		c.Game.Language = *flagLang
	}
	if *flagOpen != "" {
		stones, err := gomoku.ParseDisplayList(*flagOpen)
		if err != nil {
			return fmt.Errorf("parse -open: %w", err)
		}
		opening = stones
	}
	return c.Validate()
}

// openDebugLog sends log output and the engine's debug lines to
// $XDG_STATE_HOME/omok-local/debug.log.
func openDebugLog() (func(), error) {
	path, err := xdg.StateFile("omok-local/debug.log")
	if err != nil {
		return nil, fmt.Errorf("locate debug log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	gomoku.SetDebugOutput(f)
	log.Printf("omok-local %s started", Version)
	return func() { f.Close() }, nil
}
