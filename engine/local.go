package engine

import (
	"fmt"
	"homeworlds/agent"
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/gamemaster"
	"homeworlds/searcher"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Draw is the recorded winner of a game where both homeworlds fell together.
const Draw = "draw"

// LocalEngine runs two in-process agents against each other through a game master.
type LocalEngine struct {
	ID         uuid.UUID
	rules      *game.Rules
	agents     [2]agent.Agent
	maxActions int
	master     *gamemaster.GameMaster
}

func NewLocalEngine(rules *game.Rules, agents [2]agent.Agent, maxActions int) *LocalEngine {
	if maxActions <= 0 {
		maxActions = MaxActions
	}
	return &LocalEngine{
		ID:         uuid.New(),
		rules:      rules,
		agents:     agents,
		maxActions: maxActions,
	}
}

// State returns the latest state of the game being run, or nil before Run.
func (e *LocalEngine) State() *game.GameState {
	if e.master == nil {
		return nil
	}
	return e.master.State()
}

// Run executes the entire game loop until a winner is found or the action limit is reached.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	e.master = gamemaster.NewGameMaster(e.rules, 1)
	state := e.master.State()
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: state.Player(),
		StartTime:      time.Now(),
	}

	logger := log.With().Str("game", e.ID.String()).Logger()
	logger.Info().Msgf("%s is starting", state.Player())

	// Actions played since each agent's last search
	var updates [2][]searcher.Segment
	var moveMetrics []metrics.MoveMetric
	for step := 1; !state.Over() && step <= e.maxActions; step++ {
		player := state.Player()
		action, searchMetric := e.agents[player].FindAction(state, updates[player])
		updates[player] = nil

		if err := e.master.Play(player, action); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		u := <-e.master.Updates()
		for _, p := range game.Players {
			updates[p] = append(updates[p], searcher.Segment{Action: u.Action, StateHash: u.Hash})
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Action:       action,
			SearchMetric: searchMetric,
		})
		logger.Debug().Msgf("step %d: %s plays %s", step, player, action)
		state = u.State
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalActions = e.master.Actions()
	gameMetric.Turns = state.Turn
	gameMetric.Winner = outcome(state)

	if gameMetric.Winner == "" {
		logger.Info().Msgf("stopped after %d actions (no winner yet)", gameMetric.TotalActions)
	} else {
		logger.Info().Msgf("game ended after %d actions: %s", gameMetric.TotalActions, gameMetric.Winner)
	}
	return gameMetric, moveMetrics, nil
}

// outcome names the winner of a finished game, Draw, or "" if the game is still running.
func outcome(state *game.GameState) string {
	if !state.Over() {
		return ""
	}
	if winner, ok := state.Winner(); ok {
		return winner.String()
	}
	return Draw
}
