package gomoku

import (
	"testing"

	"omok-local/types"
)

// line returns n coordinates from start stepping along a.
func line(start types.Coord, a Axis, n int) []types.Coord {
	out := make([]types.Coord, n)
	for i := range out {
		out[i] = a.step(start, i)
	}
	return out
}

func TestFiveOnEveryAxis(t *testing.T) {
	starts := map[string]types.Coord{
		"horizontal":    at(7, 3),
		"vertical":      at(2, 9),
		"diagonal":      at(10, 2),
		"anti-diagonal": at(0, 0),
	}
	for _, a := range Axes {
		for _, player := range []types.Stone{types.Black, types.White} {
			b := NewBoard()
			place(t, b, player, line(starts[a.Name], a, 5)...)
			if !HasFiveInARow(b, player) {
				t.Errorf("%s five for %v not detected", a.Name, player)
			}
			if HasFiveInARow(b, player.Opponent()) {
				t.Errorf("%s five for %v credited to %v", a.Name, player, player.Opponent())
			}
		}
	}
}

func TestFourIsNotAWin(t *testing.T) {
	// open four
	b := NewBoard()
	place(t, b, types.Black, line(at(7, 3), Axes[0], 4)...)
	if HasFiveInARow(b, types.Black) {
		t.Fatal("open four should not win")
	}

	// four blocked on one end
	place(t, b, types.White, at(7, 2))
	if HasFiveInARow(b, types.Black) {
		t.Fatal("blocked four should not win")
	}
}

func TestBrokenFiveIsNotAWin(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 3), at(7, 4), at(7, 6), at(7, 7), at(7, 8))
	if HasFiveInARow(b, types.Black) {
		t.Fatal("five with a gap should not win")
	}
}

func TestOverlineWins(t *testing.T) {
	b := NewBoard()
	place(t, b, types.White, line(at(4, 0), Axes[1], 6)...)
	if !HasFiveInARow(b, types.White) {
		t.Fatal("six in a row should count as a win")
	}
}

func TestFiveAtBoardEdge(t *testing.T) {
	b := NewBoard()
	// diagonal ending in the top-right corner
	place(t, b, types.Black, line(at(4, 10), Axes[2], 5)...)
	got, ok := FindFive(b, types.Black)
	if !ok {
		t.Fatal("edge five not detected")
	}
	if len(got) != 5 || got[0] != at(4, 10) || got[4] != at(0, 14) {
		t.Fatalf("unexpected winning line %v", got)
	}
}

func TestFindFiveReturnsWholeRun(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, line(at(7, 2), Axes[0], 7)...)
	got, ok := FindFive(b, types.Black)
	if !ok {
		t.Fatal("expected a five")
	}
	if len(got) != 7 {
		t.Fatalf("expected the full run of 7 from its first stone, got %v", got)
	}
}

func TestFindFiveRisingOverline(t *testing.T) {
	b := NewBoard()
	// six along the rising diagonal; row-major order meets (10,1) before (11,0)
	place(t, b, types.Black, line(at(11, 0), Axes[2], 6)...)
	got, ok := FindFive(b, types.Black)
	if !ok {
		t.Fatal("expected a five")
	}
	if len(got) != 6 || got[0] != at(11, 0) || got[5] != at(6, 5) {
		t.Fatalf("expected all six stones from (11,0), got %v", got)
	}
}

func TestEmptyHasNoFive(t *testing.T) {
	if HasFiveInARow(NewBoard(), types.Empty) {
		t.Fatal("Empty can never win")
	}
}
