package searcher

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// winnable returns a position where the first player wins by a blue catastrophe at the second
// player's homeworld.
func winnable(t *testing.T) *game.GameState {
	t.Helper()
	rules := game.NewStandardRules()
	rules.Setup = [2][2]game.PieceType{
		{game.SmallRed, game.LargeYellow},
		{game.MediumBlue, game.SmallBlue},
	}
	gs := game.NewGameState(rules)
	gs = gs.Play(game.Establish(game.LargeGreen))
	gs = gs.Play(game.Establish(game.LargeBlue))

	piece, err := gs.Bank.Pop(game.MediumBlue)
	require.NoError(t, err)
	home := &gs.Homeworlds[game.Second]
	home.Ships = append(home.Ships, game.Ship{Piece: piece, Owner: game.First})
	require.NoError(t, gs.Validate())
	return gs
}

func TestNewMCTS(t *testing.T) {
	t.Run("panics without a search budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS(2) })
	})

	t.Run("applies options", func(t *testing.T) {
		m := NewMCTS(0, WithEpisodes(10), WithCutoff(20), WithSeed(9), WithCutoff(-1))
		require.Equal(t, 1, m.goroutines)
		require.Equal(t, 10, m.episodes)
		require.Equal(t, 20, m.cutoff)
		require.Equal(t, uint64(9), m.seed)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("spends every episode on the root's children", func(t *testing.T) {
		state := opened(t)
		m := NewMCTS(4, WithEpisodes(64), WithCutoff(20), WithMetrics(), WithSeed(1))

		policy, metric := m.Simulate(state, nil)

		total := 0.0
		for action, visits := range policy {
			require.True(t, state.IsLegal(action), "%s", action)
			total += visits
		}
		require.Equal(t, 64.0, total)
		require.Equal(t, 64, metric.Episodes)
		require.Equal(t, 4, metric.Goroutines)
		require.True(t, metric.IsTreeReset)
	})

	t.Run("searches for a duration", func(t *testing.T) {
		m := NewMCTS(2, WithDuration(20*time.Millisecond), WithCutoff(10), WithMetrics(), WithSeed(2))

		policy, metric := m.Simulate(opened(t), nil)

		require.NotEmpty(t, policy)
		require.Positive(t, metric.Episodes)
		require.GreaterOrEqual(t, metric.Duration, 20*time.Millisecond)
	})

	t.Run("reuses the subtree of the played action", func(t *testing.T) {
		state := opened(t)
		m := NewMCTS(2, WithEpisodes(200), WithCutoff(10), WithMetrics(), WithSeed(3))
		policy, _ := m.Simulate(state, nil)

		var best game.Action
		for action, visits := range policy {
			if visits > policy[best] {
				best = action
			}
		}
		next := state.Play(best)
		_, metric := m.Simulate(next, []Segment{{Action: best, StateHash: next.Hash()}})
		require.False(t, metric.IsTreeReset)
		require.Greater(t, m.root.Visits(), 200.0, "Root should keep its earlier visits")

		_, metric = m.Simulate(next, []Segment{{Action: best, StateHash: 0}})
		require.True(t, metric.IsTreeReset, "Mismatched lineage should rebuild the tree")
	})

	t.Run("values an immediate win", func(t *testing.T) {
		state := winnable(t)
		win := game.Catastrophe(game.HomeworldOf(game.Second), game.Blue)
		require.True(t, state.IsLegal(win))

		m := NewMCTS(2, WithEpisodes(300), WithCutoff(20), WithSeed(5))
		policy, _ := m.Simulate(state, nil)

		require.Contains(t, policy, win)
		child := m.root.child(win)
		require.NotNil(t, child)
		require.InDelta(t, Win*child.visits, child.rewards, 1e-9, "Every playout through the win should score a win")
	})
}

func TestRollout(t *testing.T) {
	t.Run("finished game scores the winner", func(t *testing.T) {
		c := metrics.NewCollector()
		c.Start(1, 10)

		player, score := rollout(finished(t), 10, EvaluateMaterial, c, rand.New(rand.NewSource(1)))

		require.Equal(t, game.First, player)
		require.Equal(t, Win, score)
		require.Equal(t, 1, c.Complete().FullPlayouts)
	})

	t.Run("cutoff evaluates the reached state", func(t *testing.T) {
		state := opened(t)
		constant := func(*game.GameState) float64 { return 0.25 }

		player, score := rollout(state, 1, constant, metrics.NewDummyCollector(), rand.New(rand.NewSource(1)))

		require.Equal(t, 0.25, score)
		require.Contains(t, game.Players, player)
	})
}

func TestEvaluateMaterial(t *testing.T) {
	require.Equal(t, Draw, EvaluateMaterial(opened(t)))

	state := winnable(t)
	// First: large green and medium blue ships, two stars. Second: large blue ship, two stars.
	require.InDelta(t, (9.0-7.0)/16.0, EvaluateMaterial(state), 1e-9)

	state.CurrentPlayer = game.Second
	require.InDelta(t, (7.0-9.0)/16.0, EvaluateMaterial(state), 1e-9)
}
