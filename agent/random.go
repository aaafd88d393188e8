package agent

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal actions.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindAction(state *game.GameState, _ []searcher.Segment) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions to choose from")
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}
}
