package agent

import (
	"homeworlds/game"
	"homeworlds/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func opened(t *testing.T) *game.GameState {
	t.Helper()
	gs := game.InitialState()
	gs = gs.Play(game.Establish(game.LargeGreen))
	return gs.Play(game.Establish(game.LargeGreen))
}

func TestFindMax(t *testing.T) {
	state := opened(t)
	actions := state.LegalActions()

	t.Run("picks the most visited action", func(t *testing.T) {
		policy := map[game.Action]float64{actions[0]: 3, actions[1]: 10, actions[2]: 5}
		require.Equal(t, actions[1], findMax(state, policy))
	})

	t.Run("breaks ties by generation order", func(t *testing.T) {
		policy := map[game.Action]float64{actions[2]: 4, actions[1]: 4}
		require.Equal(t, actions[1], findMax(state, policy))
	})

	t.Run("ignores actions that are no longer legal", func(t *testing.T) {
		policy := map[game.Action]float64{game.Establish(game.SmallRed): 100, actions[2]: 1}
		require.Equal(t, actions[2], findMax(state, policy))
	})
}

func TestAdjustTemperature(t *testing.T) {
	actions := opened(t).LegalActions()[:3]
	policy := map[game.Action]float64{actions[0]: 1, actions[1]: 3}

	t.Run("unit temperature follows visits", func(t *testing.T) {
		require.InDeltaSlice(t, []float64{0.25, 0.75, 0}, adjustTemperature(actions, policy, 1), 1e-9)
	})

	t.Run("low temperature sharpens", func(t *testing.T) {
		require.InDeltaSlice(t, []float64{0.1, 0.9, 0}, adjustTemperature(actions, policy, 0.5), 1e-9)
	})

	t.Run("unexplored policy is uniform", func(t *testing.T) {
		probs := adjustTemperature(actions, nil, 1)
		require.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, probs, 1e-9)
	})
}

func TestSample(t *testing.T) {
	actions := opened(t).LegalActions()[:3]
	probs := []float64{0.25, 0.75, 0}

	require.Equal(t, actions[0], sample(actions, probs, 0.1))
	require.Equal(t, actions[1], sample(actions, probs, 0.3))
	require.Equal(t, actions[2], sample(actions, probs, 1.0), "rounding falls back to the last action")
	require.Panics(t, func() { sample(nil, nil, 0.5) })
}

func TestAgents(t *testing.T) {
	state := opened(t)

	t.Run("random agent plays legal actions", func(t *testing.T) {
		a := NewRandomAgent(1)
		for i := 0; i < 20; i++ {
			action, _ := a.FindAction(state, nil)
			require.True(t, state.IsLegal(action))
		}
	})

	t.Run("evaluation agent plays legal actions", func(t *testing.T) {
		mcts := searcher.NewMCTS(2, searcher.WithEpisodes(50), searcher.WithCutoff(10), searcher.WithSeed(1), searcher.WithMetrics())
		action, metric := NewEvaluationAgent(mcts).FindAction(state, nil)
		require.True(t, state.IsLegal(action))
		require.Equal(t, 50, metric.Episodes)
	})

	t.Run("training agent plays legal actions", func(t *testing.T) {
		mcts := searcher.NewMCTS(2, searcher.WithEpisodes(50), searcher.WithCutoff(10), searcher.WithSeed(1))
		action, _ := NewTrainingAgent(mcts, 1.0, 7).FindAction(state, nil)
		require.True(t, state.IsLegal(action))
		require.Panics(t, func() { NewTrainingAgent(mcts, 0, 7) })
	})
}
