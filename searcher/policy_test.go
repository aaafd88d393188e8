package searcher

import (
	"math"
	"testing"

	"homeworlds/game"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(CSquared*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("single parent visit leaves only exploitation", func(t *testing.T) {
		policy := newUCT(CSquared, 1)
		require.Equal(t, Loss/2, policy.evaluate(Loss, 2))
	})

	t.Run("exploration term shrinks with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		require.Greater(t, policy.evaluate(Draw, 10), policy.evaluate(Draw, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("losses lower the score", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		require.Greater(t, policy.evaluate(3*Win, 5), policy.evaluate(3*Loss, 5))
	})
}

func TestReward(t *testing.T) {
	require.Equal(t, Win, reward(game.First, game.First, Win))
	require.Equal(t, Loss, reward(game.Second, game.First, Win))
	require.Equal(t, 0.25, reward(game.First, game.Second, -0.25))
	require.Equal(t, Draw, reward(game.Second, game.First, Draw))
}
