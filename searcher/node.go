package searcher

import "homeworlds/game"

// Evaluate scores a non-terminal state in [Loss, Win] for the player to act.
type Evaluate func(state *game.GameState) float64

// homeworldStarWeight values a homeworld star against a small ship.
const homeworldStarWeight = 2.0

// EvaluateMaterial compares the players' fleets, counting ships by size and homeworld stars.
func EvaluateMaterial(state *game.GameState) float64 {
	var material [2]float64
	for _, s := range state.Systems() {
		for _, ship := range s.Ships() {
			material[ship.Owner] += float64(ship.Type.Size().Rank())
		}
	}
	for _, p := range game.Players {
		material[p] += homeworldStarWeight * float64(len(state.Homeworlds[p].Stars))
	}

	mine := material[state.Player()]
	theirs := material[state.Player().Opponent()]
	if mine+theirs == 0 {
		return Draw
	}
	return (mine - theirs) / (mine + theirs)
}

// terminalScore returns the scorer and score of a finished game.
func terminalScore(state *game.GameState) (game.Player, float64) {
	winner, ok := state.Winner()
	if !ok {
		return state.Player(), Draw
	}
	return winner, Win
}
