package searcher

import (
	"homeworlds/game"
	"math"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)
const Draw = 0.0

// uct scores the children of one parent with N visits.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) uct {
	if N <= 0 {
		panic("N must be positive")
	}
	return uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// reward converts a score from scorer's perspective into the given player's.
func reward(player, scorer game.Player, score float64) float64 {
	if player == scorer {
		return score
	}
	return -score
}
