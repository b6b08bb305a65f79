package gomoku

import "omok-local/types"

// Pattern scores. A run is "blocked" when an opponent stone sits right
// past either end; the table does not tell one side from two.
const (
	scoreFive         = 100000
	scoreOpenFour     = 10000
	scoreBlockedFour  = 5000
	scoreOpenThree    = 1000
	scoreBlockedThree = 200
	scoreOpenTwo      = 100
	scoreBlockedTwo   = 30
)

// runScore maps one axis' run length and block flag to its contribution.
func runScore(length int, blocked bool) int {
	switch {
	case length >= WinLength:
		return scoreFive
	case length == 4:
		if blocked {
			return scoreBlockedFour
		}
		return scoreOpenFour
	case length == 3:
		if blocked {
			return scoreBlockedThree
		}
		return scoreOpenThree
	case length == 2:
		if blocked {
			return scoreBlockedTwo
		}
		return scoreOpenTwo
	}
	return 0
}

// AxisRun is the run through a coordinate along one axis.
type AxisRun struct {
	Axis    Axis
	Length  int
	Blocked bool
}

// Runs measures, along every axis, the contiguous player stones through
// c, counting c itself as one. c is expected to hold player's stone
// already. The board is only read.
func Runs(b *Board, player types.Stone, c types.Coord) [4]AxisRun {
	opponent := player.Opponent()
	var runs [4]AxisRun
	for i, a := range Axes {
		forward, past := countRun(b, c, a, 1, player)
		blockedForward := past.Valid() && b.At(past) == opponent
		backward, before := countRun(b, c, a, -1, player)
		blockedBackward := before.Valid() && b.At(before) == opponent
		runs[i] = AxisRun{
			Axis:    a,
			Length:  1 + forward + backward,
			Blocked: blockedForward || blockedBackward,
		}
	}
	return runs
}

// Score rates a stone of player at c by the runs it is part of. The
// caller places the probe stone at c before the call and removes it
// afterwards.
func Score(b *Board, player types.Stone, c types.Coord) int {
	total := 0
	for _, r := range Runs(b, player, c) {
		total += runScore(r.Length, r.Blocked)
	}
	return total
}
