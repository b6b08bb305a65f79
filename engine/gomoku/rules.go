package gomoku

import "omok-local/types"

// WinLength is the run length that wins. Longer runs also win.
const WinLength = 5

// Axis is a scan direction expressed as a (row, col) step.
type Axis struct {
	DRow, DCol int
	Name       string
}

// Axes are the four line directions. Scanning forward and backward along
// each covers all eight neighbours.
var Axes = [4]Axis{
	{DRow: 0, DCol: 1, Name: "horizontal"},
	{DRow: 1, DCol: 0, Name: "vertical"},
	{DRow: -1, DCol: 1, Name: "diagonal"},
	{DRow: 1, DCol: 1, Name: "anti-diagonal"},
}

func (a Axis) step(c types.Coord, n int) types.Coord {
	return types.Coord{Row: c.Row + a.DRow*n, Col: c.Col + a.DCol*n}
}

// countRun counts consecutive player stones starting one step from c in
// direction dir (+1 or -1). It also returns the first cell past the run.
func countRun(b *Board, c types.Coord, a Axis, dir int, player types.Stone) (int, types.Coord) {
	n := 0
	next := a.step(c, dir)
	for next.Valid() && b.At(next) == player {
		n++
		next = a.step(next, dir)
	}
	return n, next
}

// FindFive looks for a line of WinLength or more player stones. Every
// stone of player is tried as a start and the run is followed forward
// only, so a long line is found several times over; any hit is enough.
// The returned line holds every stone of the first run found.
func FindFive(b *Board, player types.Stone) ([]types.Coord, bool) {
	if player == types.Empty {
		return nil, false
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			start := types.Coord{Row: row, Col: col}
			if b.At(start) != player {
				continue
			}
			for _, a := range Axes {
				forward, _ := countRun(b, start, a, 1, player)
				if forward+1 < WinLength {
					continue
				}
				// the scan can enter a rising run past its first stone
				backward, _ := countRun(b, start, a, -1, player)
				first := a.step(start, -backward)
				line := make([]types.Coord, 0, backward+forward+1)
				for i := 0; i <= backward+forward; i++ {
					line = append(line, a.step(first, i))
				}
				return line, true
			}
		}
	}
	return nil, false
}

// HasFiveInARow reports whether player has an unbroken line of five or more.
func HasFiveInARow(b *Board, player types.Stone) bool {
	_, ok := FindFive(b, player)
	return ok
}
