// Package gomoku implements five-in-a-row on a 15x15 board: board state,
// win detection, the one-ply heuristic opponent and the turn controller.
package gomoku

import (
	"fmt"

	"omok-local/types"
)

// Size is the board width and height.
const Size = types.BoardSize

// Board owns the grid. The zero value is an empty board.
//
// The count of non-empty cells always equals moves.
type Board struct {
	cells [Size][Size]types.Stone
	moves int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds reports whether c is on the board.
func (b *Board) InBounds(c types.Coord) bool {
	return c.Valid()
}

// At returns the stone at c. Off-board coordinates read as Empty.
func (b *Board) At(c types.Coord) types.Stone {
	if !b.InBounds(c) {
		return types.Empty
	}
	return b.cells[c.Row][c.Col]
}

// Place puts player's stone on an empty cell and returns the prior
// value (always Empty on success).
func (b *Board) Place(c types.Coord, player types.Stone) (types.Stone, error) {
	if !b.InBounds(c) {
		return types.Empty, fmt.Errorf("place %v: %w", c, ErrOutOfBounds)
	}
	prior := b.cells[c.Row][c.Col]
	if prior != types.Empty {
		return prior, fmt.Errorf("place %v: %w", c, ErrOccupied)
	}
	b.cells[c.Row][c.Col] = player
	b.moves++
	return prior, nil
}

// remove clears a cell placed by a trial. Committed moves are never removed.
func (b *Board) remove(c types.Coord) {
	if b.cells[c.Row][c.Col] != types.Empty {
		b.cells[c.Row][c.Col] = types.Empty
		b.moves--
	}
}

// trial places player at c, runs fn and removes the stone again before
// returning. Trials must not nest.
func (b *Board) trial(c types.Coord, player types.Stone, fn func() int) int {
	if _, err := b.Place(c, player); err != nil {
		panic(fmt.Errorf("trial placement: %w", err))
	}
	defer b.remove(c)
	return fn()
}

// IsFull returns true when no empty cells remain.
func (b *Board) IsFull() bool {
	return b.moves == Size*Size
}

// Moves returns the number of stones on the board.
func (b *Board) Moves() int {
	return b.moves
}

// EmptyCells returns every empty coordinate in row-major order.
func (b *Board) EmptyCells() []types.Coord {
	out := make([]types.Coord, 0, Size*Size-b.moves)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == types.Empty {
				out = append(out, types.Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// Grid copies the cells into a freshly allocated [row][col] slice.
func (b *Board) Grid() [][]types.Stone {
	grid := make([][]types.Stone, Size)
	for row := range grid {
		grid[row] = make([]types.Stone, Size)
		copy(grid[row], b.cells[row][:])
	}
	return grid
}
