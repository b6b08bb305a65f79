package gomoku

import (
	"testing"

	"omok-local/types"
)

// probe scores a hypothetical stone of player at c.
func probe(b *Board, player types.Stone, c types.Coord) int {
	return b.trial(c, player, func() int { return Score(b, player, c) })
}

func TestScoreFirstStoneIsZeroEverywhere(t *testing.T) {
	b := NewBoard()
	for _, c := range b.EmptyCells() {
		for _, player := range []types.Stone{types.Black, types.White} {
			if s := probe(b, player, c); s != 0 {
				t.Fatalf("expected 0 for %v at %v on empty board, got %d", player, c, s)
			}
		}
	}
	if b.Moves() != 0 {
		t.Fatalf("probing left %d stones behind", b.Moves())
	}
}

func TestRunScoreTable(t *testing.T) {
	cases := []struct {
		length  int
		blocked bool
		want    int
	}{
		{7, false, 100000},
		{5, true, 100000},
		{4, false, 10000},
		{4, true, 5000},
		{3, false, 1000},
		{3, true, 200},
		{2, false, 100},
		{2, true, 30},
		{1, false, 0},
		{1, true, 0},
	}
	for _, tc := range cases {
		if got := runScore(tc.length, tc.blocked); got != tc.want {
			t.Errorf("runScore(%d, %v) = %d, want %d", tc.length, tc.blocked, got, tc.want)
		}
	}
}

func TestScoreOpenTwo(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 7))
	if s := probe(b, types.Black, at(7, 6)); s != 100 {
		t.Fatalf("expected open two = 100, got %d", s)
	}
}

func TestScoreBlockedThree(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 5), at(7, 6))
	place(t, b, types.White, at(7, 8))
	if s := probe(b, types.Black, at(7, 7)); s != 200 {
		t.Fatalf("expected blocked three = 200, got %d", s)
	}
}

func TestScoreBlockedBothSidesCountsOnce(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 6))
	place(t, b, types.White, at(7, 5), at(7, 8))
	if s := probe(b, types.Black, at(7, 7)); s != 30 {
		t.Fatalf("expected blocked two = 30, got %d", s)
	}
}

func TestScoreEdgeIsNotABlock(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(0, 0), at(0, 1))
	if s := probe(b, types.Black, at(0, 2)); s != 1000 {
		t.Fatalf("run against the edge should score as open three, got %d", s)
	}
}

func TestScoreCombinesAxes(t *testing.T) {
	b := NewBoard()
	// open three horizontally, open two vertically, blocked two diagonally
	place(t, b, types.White, at(7, 5), at(7, 6), at(6, 7), at(8, 6))
	place(t, b, types.Black, at(9, 5))
	want := 1000 + 100 + 30
	if s := probe(b, types.White, at(7, 7)); s != want {
		t.Fatalf("expected %d, got %d", want, s)
	}
}

func TestScoreFourAndFive(t *testing.T) {
	b := NewBoard()
	place(t, b, types.White, at(3, 3), at(4, 4), at(5, 5))
	if s := probe(b, types.White, at(6, 6)); s != 10000 {
		t.Fatalf("expected open four = 10000, got %d", s)
	}
	place(t, b, types.White, at(6, 6))
	if s := probe(b, types.White, at(7, 7)); s != 100000 {
		t.Fatalf("expected five = 100000, got %d", s)
	}
}

func TestRunsReportsAxes(t *testing.T) {
	b := NewBoard()
	place(t, b, types.Black, at(7, 7), at(8, 7))
	place(t, b, types.White, at(9, 7))
	runs := Runs(b, types.Black, at(7, 7))
	if runs[1].Axis.Name != "vertical" || runs[1].Length != 2 || !runs[1].Blocked {
		t.Fatalf("unexpected vertical run %+v", runs[1])
	}
	if runs[0].Length != 1 || runs[0].Blocked {
		t.Fatalf("unexpected horizontal run %+v", runs[0])
	}
}
