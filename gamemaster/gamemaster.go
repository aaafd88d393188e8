package gamemaster

import (
	"errors"
	"fmt"
	"homeworlds/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not the player's turn")
)

// Update announces one played action and the state it produced.
type Update struct {
	Player game.Player
	Action game.Action
	State  *game.GameState
	Hash   game.StateHash
}

// GameMaster holds the authoritative game state and resolves actions.
type GameMaster struct {
	state    *game.GameState
	updateCh chan Update
	actions  int
}

// NewGameMaster starts a game under the rules. Updates are buffered up to buffer entries; Play
// blocks once the buffer is full until they are received.
func NewGameMaster(rules *game.Rules, buffer int) *GameMaster {
	return &GameMaster{
		state:    game.NewGameState(rules),
		updateCh: make(chan Update, buffer),
	}
}

// State returns the current state. States are immutable, so it may be shared.
func (gm *GameMaster) State() *game.GameState {
	return gm.state
}

// Actions returns the number of actions played so far.
func (gm *GameMaster) Actions() int {
	return gm.actions
}

// Updates returns the channel of played actions. It is closed once the game is over.
func (gm *GameMaster) Updates() <-chan Update {
	return gm.updateCh
}

// Play resolves the player's action.
func (gm *GameMaster) Play(player game.Player, action game.Action) error {
	if gm.state.Over() {
		return ErrGameOver
	}
	if player != gm.state.Player() {
		return fmt.Errorf("%w: %s tried %s during %s's turn", ErrNotYourTurn, player, action, gm.state.Player())
	}

	next, err := gm.state.Apply(action)
	if err != nil {
		return err
	}
	if next.Player() != player {
		log.Debug().Msgf("turn %d: %s hands over to %s", next.Turn, player, next.Player())
	}

	gm.state = next
	gm.actions++
	gm.updateCh <- Update{Player: player, Action: action, State: next, Hash: next.Hash()}

	if next.Over() {
		if winner, ok := next.Winner(); ok {
			log.Info().Msgf("%s wins after %d turns", winner, next.Turn)
		} else {
			log.Info().Msgf("draw after %d turns", next.Turn)
		}
		close(gm.updateCh)
	}
	return nil
}
