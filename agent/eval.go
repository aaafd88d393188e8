package agent

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindAction(state *game.GameState, updates []searcher.Segment) (game.Action, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	return findMax(state, policy), metric
}
