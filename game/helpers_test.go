package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// position returns a post-opening state with starless, shipless homeworlds and a full bank.
// Callers give both homeworlds a star, or the game is already over.
func position(t *testing.T) *GameState {
	t.Helper()
	rules := NewStandardRules()
	rules.Strict = true
	gs := &GameState{
		Rules:         rules,
		Bank:          NewBank(),
		CurrentPlayer: First,
		Turn:          openingTurns,
		NextColony:    1,
		Budget:        NewBudget(),
	}
	for _, p := range Players {
		gs.Homeworlds[p].Owner = p
	}
	return gs
}

func pop(t *testing.T, gs *GameState, pt PieceType) Piece {
	t.Helper()
	piece, err := gs.Bank.Pop(pt)
	require.NoError(t, err)
	return piece
}

func addStar(t *testing.T, gs *GameState, home Player, pt PieceType) {
	t.Helper()
	hw := &gs.Homeworlds[home]
	hw.Stars = append(hw.Stars, pop(t, gs, pt))
}

func addShip(t *testing.T, gs *GameState, at SystemID, owner Player, pt PieceType) {
	t.Helper()
	ships := gs.ships(at)
	require.NotNil(t, ships, "system %s should exist", at)
	*ships = append(*ships, Ship{Piece: pop(t, gs, pt), Owner: owner})
}

func addColony(t *testing.T, gs *GameState, star PieceType) SystemID {
	t.Helper()
	return ColonyOf(gs.AddColony(pop(t, gs, star)))
}

func ofKind(actions []Action, kind ActionKind) []Action {
	var out []Action
	for _, a := range actions {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

func apply(t *testing.T, gs *GameState, a Action) *GameState {
	t.Helper()
	next, err := gs.Apply(a)
	require.NoError(t, err, "applying %s", a)
	require.NoError(t, next.Validate())
	return next
}
