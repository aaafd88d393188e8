package agent

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/searcher"
	"math"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. It samples actions in
// proportion to visits raised to 1/temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return trainingAgent{mcts: mcts, temperature: temperature, rng: rand.New(rand.NewSource(seed))}
}

func (a trainingAgent) FindAction(state *game.GameState, updates []searcher.Segment) (game.Action, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	actions := state.LegalActions()
	probs := adjustTemperature(actions, policy, a.temperature)
	return sample(actions, probs, a.rng.Float64()), metric
}

// adjustTemperature returns the temperature-adjusted probability of each action.
func adjustTemperature(actions []game.Action, policy map[game.Action]float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	probs := make([]float64, len(actions))
	for i, action := range actions {
		probs[i] = math.Pow(policy[action], exponent)
		sum += probs[i]
	}
	if sum == 0 { // Nothing explored
		for i := range probs {
			probs[i] = 1.0 / float64(len(probs))
		}
		return probs
	}
	// Normalize
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func sample(actions []game.Action, probs []float64, sampled float64) game.Action {
	if len(actions) == 0 {
		panic("no legal actions to choose from")
	}
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return actions[i]
		}
	}
	return actions[len(actions)-1] // Fallback in case of rounding errors
}
