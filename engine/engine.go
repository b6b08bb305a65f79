// Package engine defines the contract between the game engine and the UI.
package engine

import "omok-local/types"

// GameEngine is everything the UI may do with a running game.
type GameEngine interface {
	// Reset clears the board and starts a new game. If the computer
	// plays Black it makes its opening move before Reset returns.
	Reset()

	// GetBoardState returns a snapshot of the current game.
	GetBoardState() *types.BoardState

	// SubmitHumanMove places the human's stone at c and, unless the game
	// ended, answers with the computer's move.
	// Returns an error if the move is rejected; the board is unchanged then.
	SubmitHumanMove(c types.Coord) error

	// SetDifficulty changes the computer's strength from the next decision on.
	SetDifficulty(d types.Difficulty)

	// Difficulty returns the active level.
	Difficulty() types.Difficulty

	// Hint returns the move the engine suggests for the human.
	Hint() (types.Coord, bool)

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// GetPlayerColor returns the human player's colour.
	GetPlayerColor() types.Stone

	// OnMove registers a callback for every committed stone (stonePlaced).
	// boardState is a copy taken right after the placement.
	OnMove(func(c types.Coord, stone types.Stone, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends (gameEnded).
	OnGameEnd(func(status types.GameStatus))
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	PlayerColor types.Stone      // colour of the human
	Difficulty  types.Difficulty // computer strength
	Seed        int64            // random source seed for Easy; 0 picks one from the clock
	Opening     []types.Coord    // stones placed alternately before play starts, Black first
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerColor: types.Black, // Human plays black
		Difficulty:  types.Normal,
	}
}
