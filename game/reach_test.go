package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReachable(t *testing.T) {
	t.Run("is symmetric for every pair of size sets", func(t *testing.T) {
		for a := SizeSet(0); a < 1<<4; a++ {
			for b := SizeSet(0); b < 1<<4; b++ {
				require.Equal(t, Reachable(a, b), Reachable(b, a), "sets %b and %b", a, b)
			}
		}
	})

	t.Run("requires disjoint sizes", func(t *testing.T) {
		small := SizeSet(0).With(Small)
		mediumLarge := SizeSet(0).With(Medium).With(Large)
		require.True(t, Reachable(small, mediumLarge))
		require.False(t, Reachable(small.With(Large), mediumLarge))
	})

	t.Run("homeworld with two different sized stars is not reachable from itself", func(t *testing.T) {
		gs := position(t)
		addStar(t, gs, First, SmallRed)
		addStar(t, gs, First, LargeBlue)
		hw, ok := gs.System(HomeworldOf(First))
		require.True(t, ok)
		require.False(t, ReachableSystems(hw, hw))
	})

	t.Run("starless homeworld is unreachable", func(t *testing.T) {
		gs := position(t)
		addStar(t, gs, Second, MediumGreen)
		empty, _ := gs.System(HomeworldOf(First))
		other, _ := gs.System(HomeworldOf(Second))
		require.False(t, ReachableSystems(empty, other))
		require.False(t, ReachableSystems(other, empty))
	})
}

func TestCanUse(t *testing.T) {
	gs := position(t)
	addStar(t, gs, First, SmallRed)
	addShip(t, gs, HomeworldOf(First), First, LargeGreen)
	addShip(t, gs, HomeworldOf(First), Second, MediumBlue)
	hw, _ := gs.System(HomeworldOf(First))

	require.True(t, CanUse(hw, First, Red), "star colors are shared")
	require.True(t, CanUse(hw, Second, Red), "star colors are shared")
	require.True(t, CanUse(hw, First, Green), "own ship color")
	require.False(t, CanUse(hw, Second, Green), "enemy ship color")
	require.True(t, CanUse(hw, Second, Blue))
	require.False(t, CanUse(hw, First, Yellow))
}
