package ui

import (
	"github.com/rivo/tview"

	"omok-local/types"
)

// NewResultDialog announces the outcome and asks whether to play again.
func NewResultDialog(status types.GameStatus, human types.Stone, onRestart, onMenu, onQuit func()) *tview.Modal {
	actions := []func(){onRestart, onMenu, onQuit}
	modal := tview.NewModal().
		SetText(outcomeText(status, human) + "\n\n" + tr("Play again?")).
		AddButtons([]string{tr("Restart"), tr("Menu"), tr("Quit")}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			// Esc reports -1; treat it as Menu
			if buttonIndex < 0 || buttonIndex >= len(actions) {
				buttonIndex = 1
			}
			if fn := actions[buttonIndex]; fn != nil {
				fn()
			}
		})
	modal.SetTitle(" " + tr("Result") + " ")
	return modal
}
