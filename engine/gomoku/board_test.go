package gomoku

import (
	"errors"
	"testing"

	"omok-local/types"
)

// place puts stones on b, failing the test on any error.
func place(t *testing.T, b *Board, stone types.Stone, coords ...types.Coord) {
	t.Helper()
	for _, c := range coords {
		if _, err := b.Place(c, stone); err != nil {
			t.Fatalf("place %v %v: %v", stone, c, err)
		}
	}
}

func at(row, col int) types.Coord {
	return types.Coord{Row: row, Col: col}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	if b.Moves() != 0 {
		t.Fatalf("expected 0 moves, got %d", b.Moves())
	}
	if b.IsFull() {
		t.Fatal("empty board should not be full")
	}
	if n := len(b.EmptyCells()); n != Size*Size {
		t.Fatalf("expected %d empty cells, got %d", Size*Size, n)
	}
}

func TestInBounds(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		c    types.Coord
		want bool
	}{
		{at(0, 0), true},
		{at(14, 14), true},
		{at(7, 15), false},
		{at(-1, 3), false},
		{types.NoCoord, false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.c); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestPlaceReturnsPriorValue(t *testing.T) {
	b := NewBoard()
	prior, err := b.Place(at(7, 7), types.Black)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if prior != types.Empty {
		t.Fatalf("expected prior Empty, got %v", prior)
	}
	if b.At(at(7, 7)) != types.Black {
		t.Fatalf("expected Black at (7,7), got %v", b.At(at(7, 7)))
	}
	if b.Moves() != 1 {
		t.Fatalf("expected 1 move, got %d", b.Moves())
	}
}

func TestPlaceOutOfBoundsLeavesBoardUnchanged(t *testing.T) {
	b := NewBoard()
	place(t, b, types.White, at(3, 4))
	before := *b
	for _, c := range []types.Coord{at(-1, 0), at(0, -1), at(15, 0), at(0, 15), at(20, 20)} {
		if _, err := b.Place(c, types.Black); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds for %v, got %v", c, err)
		}
		if *b != before {
			t.Fatalf("board changed after rejected move %v", c)
		}
	}
}

func TestPlaceOccupiedLeavesBoardUnchanged(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 7))
	before := *b
	if _, err := b.Place(at(7, 7), types.White); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if *b != before {
		t.Fatal("board changed after rejected move")
	}
}

func TestTrialRestoresBoard(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 7), at(7, 8))
	before := *b
	seen := types.Empty
	b.trial(at(7, 9), types.White, func() int {
		seen = b.At(at(7, 9))
		return 0
	})
	if seen != types.White {
		t.Fatalf("probe stone not visible during trial, saw %v", seen)
	}
	if *b != before {
		t.Fatal("trial left the board modified")
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard()
	for _, c := range b.EmptyCells() {
		place(t, b, types.Black, c)
	}
	if !b.IsFull() {
		t.Fatal("board should be full")
	}
	if len(b.EmptyCells()) != 0 {
		t.Fatal("full board should have no empty cells")
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(0, 0))
	cells := b.EmptyCells()
	if cells[0] != at(0, 1) || cells[Size-1] != at(1, 0) {
		t.Fatalf("expected row-major order, got %v then %v", cells[0], cells[Size-1])
	}
}

func TestGridCopies(t *testing.T) {
	b := NewBoard()
	place(t, b, types.White, at(4, 5))
	grid := b.Grid()
	if grid[4][5] != types.White {
		t.Fatalf("expected White at grid[4][5], got %v", grid[4][5])
	}
	grid[4][5] = types.Black
	if b.At(at(4, 5)) != types.White {
		t.Fatal("modifying the grid copy changed the board")
	}
}
