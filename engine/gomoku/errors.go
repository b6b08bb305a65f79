package gomoku

import "errors"

// Errors returned by placement and turn handling. All of them leave the
// board untouched.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
	ErrNotYourTurn = errors.New("not your turn")
)

// ErrNoLegalMove means the selector was asked to move on a full board.
// The controller checks for a draw first, so seeing it is a bug.
var ErrNoLegalMove = errors.New("no legal move")
