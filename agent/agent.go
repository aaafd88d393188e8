package agent

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/searcher"
)

type Agent interface {
	// FindAction returns the action to play and search metrics (if collected). Updates list the
	// actions played since the agent's previous call.
	FindAction(state *game.GameState, updates []searcher.Segment) (game.Action, metrics.SearchMetric)
}

// findMax returns the legal action with the most visits, breaking ties by generation order.
func findMax(state *game.GameState, policy map[game.Action]float64) game.Action {
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions to choose from")
	}

	maxAction := actions[0]
	maxVisit := -1.0
	for _, action := range actions {
		if visit, ok := policy[action]; ok && visit > maxVisit {
			maxVisit = visit
			maxAction = action
		}
	}
	return maxAction
}
