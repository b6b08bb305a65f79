package gomoku

import (
	"fmt"
	"strconv"
	"strings"

	"omok-local/types"
)

// Display notation:
// - Columns: A-O (left to right, no letter skipped)
// - Rows: 1-15 (from bottom of board)
// - Example: H8 is the centre point
//
// Engine coordinate system:
// - Row: 0-14 (top to bottom)
// - Col: 0-14 (left to right)
// - Example: (7, 7) for H8, (14, 0) for A1

// PosToDisplay converts engine coordinates to display notation.
// (14, 0) -> A1, (7, 7) -> H8, (0, 14) -> O15
func PosToDisplay(c types.Coord) string {
	if !c.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), Size-c.Row)
}

// ParseDisplay converts display notation back to engine coordinates.
func ParseDisplay(vertex string) (types.Coord, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))
	if len(vertex) < 2 {
		return types.NoCoord, fmt.Errorf("invalid vertex: %q", vertex)
	}

	col := int(vertex[0]) - 'A'
	if col < 0 || col >= Size {
		return types.NoCoord, fmt.Errorf("invalid column in vertex: %q", vertex)
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return types.NoCoord, fmt.Errorf("invalid row in vertex: %q", vertex)
	}
	if row < 1 || row > Size {
		return types.NoCoord, fmt.Errorf("vertex %q: %w", vertex, ErrOutOfBounds)
	}

	return types.Coord{Row: Size - row, Col: col}, nil
}

// ParseDisplayList parses a comma or space separated list such as "H8,H9 J7".
func ParseDisplayList(s string) ([]types.Coord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]types.Coord, 0, len(fields))
	for _, f := range fields {
		c, err := ParseDisplay(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
