package gomoku

import "omok-local/types"

// Rand is the random source used for Easy play. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// easyRandomRate is the share of Easy decisions that skip scoring and
// play a uniformly random empty cell.
const easyRandomRate = 0.3

// Profile weights the attack and defense scores of a candidate.
type Profile struct {
	Attack  float64
	Defense float64
}

// Weights returns the profile for a difficulty. Unset means Normal.
func Weights(d types.Difficulty) Profile {
	switch d.OrDefault() {
	case types.Hard:
		return Profile{Attack: 1.2, Defense: 1.1}
	case types.Easy:
		return Profile{Attack: 1.0, Defense: 0.7}
	default:
		return Profile{Attack: 1.0, Defense: 0.9}
	}
}

// CandidateScore rates an empty cell for player: how good the cell is for
// player (attack) and how good it would be for opponent (defense),
// combined with the difficulty weights. The board is left as found.
func CandidateScore(b *Board, player, opponent types.Stone, c types.Coord, d types.Difficulty) float64 {
	w := Weights(d)
	attack := b.trial(c, player, func() int { return Score(b, player, c) })
	defense := b.trial(c, opponent, func() int { return Score(b, opponent, c) })
	return float64(attack)*w.Attack + float64(defense)*w.Defense
}

// Decision is the outcome of one move selection.
type Decision struct {
	Move   types.Coord
	Score  float64
	Random bool // picked by the Easy random branch, Score is meaningless
}

// Decide picks player's next move. It returns false only when the board
// has no empty cell.
//
// On Easy, with probability 0.3, a random empty cell is played without
// scoring. Otherwise every empty cell is scored with CandidateScore and
// the strictly best one wins; ties go to the first cell in row-major
// order. rng may be nil only when d is not Easy; a nil rng on Easy
// panics.
func Decide(b *Board, player, opponent types.Stone, d types.Difficulty, rng Rand) (Decision, bool) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return Decision{Move: types.NoCoord}, false
	}
	d = d.OrDefault()

	if d == types.Easy && rng == nil {
		panic("gomoku: Easy needs a random source")
	}
	if d == types.Easy && rng.Float64() < easyRandomRate {
		return Decision{Move: cells[rng.Intn(len(cells))], Random: true}, true
	}

	best := Decision{Move: cells[0], Score: CandidateScore(b, player, opponent, cells[0], d)}
	for _, c := range cells[1:] {
		if s := CandidateScore(b, player, opponent, c, d); s > best.Score {
			best = Decision{Move: c, Score: s}
		}
	}
	return best, true
}

// BestMove returns player's next move, or false on a full board.
func BestMove(b *Board, player, opponent types.Stone, d types.Difficulty, rng Rand) (types.Coord, bool) {
	dec, ok := Decide(b, player, opponent, d, rng)
	return dec.Move, ok
}
