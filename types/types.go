// Package types contains shared data structures for omok-local.
package types

import (
	"fmt"
	"strings"
)

// BoardSize is the fixed width and height of the board.
const BoardSize = 15

// Stone is the content of a board cell. The numeric values double as
// indexes into the renderer's colour table.
type Stone int

const (
	Empty Stone = iota
	Black
	White
)

// Opponent returns the other colour. Empty has no opponent.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Coord is a (row, column) position, row 0 at the top.
type Coord struct {
	Row int
	Col int
}

// NoCoord marks "no position", e.g. before the first move.
var NoCoord = Coord{Row: -1, Col: -1}

// Valid reports whether c lies on the board.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Difficulty selects the computer's weighting profile.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Normal
	Hard
)

var difficultyStrings = [...]string{
	"Unknown",
	"Easy",
	"Normal",
	"Hard",
}

// Difficulties lists the selectable levels in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// ParseDifficulty parses a level name, ignoring case. It returns 0
// (unknown) if s names no level.
func ParseDifficulty(s string) Difficulty {
	s = strings.TrimSpace(s)
	for i := range difficultyStrings {
		if i > 0 && strings.EqualFold(s, difficultyStrings[i]) {
			return Difficulty(i)
		}
	}
	return 0
}

// Valid reports whether d is one of the three named levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// OrDefault returns d, or Normal if d is not a named level.
func (d Difficulty) OrDefault() Difficulty {
	if !d.Valid() {
		return Normal
	}
	return d
}

// Next cycles Easy -> Normal -> Hard -> Easy.
func (d Difficulty) Next() Difficulty {
	if !d.Valid() || d == Hard {
		return Easy
	}
	return d + 1
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return difficultyStrings[0]
	}
	return difficultyStrings[d]
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	v := ParseDifficulty(string(text))
	if !v.Valid() {
		return fmt.Errorf("unknown difficulty %q", string(text))
	}
	*d = v
	return nil
}

// GameStatus is derived from the board after every placement.
type GameStatus int

const (
	InProgress GameStatus = iota
	BlackWon
	WhiteWon
	Draw
)

// WonBy returns the status for a win by s.
func WonBy(s Stone) GameStatus {
	if s == White {
		return WhiteWon
	}
	return BlackWon
}

// Terminal reports whether no further placements are accepted.
func (g GameStatus) Terminal() bool {
	return g != InProgress
}

// Winner returns the winning colour, or Empty for a draw or a running game.
func (g GameStatus) Winner() Stone {
	switch g {
	case BlackWon:
		return Black
	case WhiteWon:
		return White
	}
	return Empty
}

func (g GameStatus) String() string {
	switch g {
	case BlackWon:
		return "Black wins"
	case WhiteWon:
		return "White wins"
	case Draw:
		return "Draw"
	default:
		return "In progress"
	}
}

// BoardState is a snapshot of a game handed to renderers.
// Board is indexed as Board[row][col].
type BoardState struct {
	MoveNumber   int
	PlayerToMove Stone
	Status       GameStatus
	Board        [][]Stone
	LastMove     Coord
	WinningLine  []Coord
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// At returns the stone at c, or Empty if c is off the board.
func (b *BoardState) At(c Coord) Stone {
	if c.Row < 0 || c.Row >= b.Height() || c.Col < 0 || c.Col >= b.Width() {
		return Empty
	}
	return b.Board[c.Row][c.Col]
}

// OnWinningLine reports whether c is part of the highlighted five.
func (b *BoardState) OnWinningLine(c Coord) bool {
	for _, w := range b.WinningLine {
		if w == c {
			return true
		}
	}
	return false
}

// NewBoardState creates a new empty snapshot of the given size.
func NewBoardState(size int) *BoardState {
	board := make([][]Stone, size)
	for i := range board {
		board[i] = make([]Stone, size)
	}
	return &BoardState{
		MoveNumber:   0,
		PlayerToMove: Black, // Black plays first
		Status:       InProgress,
		Board:        board,
		LastMove:     NoCoord,
	}
}
