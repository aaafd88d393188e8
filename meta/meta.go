// Package meta holds the default search and match settings.
package meta

import "time"

// Goroutines defines the number of goroutines to use per search.
const Goroutines = 8

// Episodes defines the number of episodes for MCTS.
const Episodes = 150

// Cutoff defines the rollout cutoff for MCTS.
const Cutoff = 100

// MaxActions defines the number of actions after which a game is abandoned.
const MaxActions = 600

// GamesPerMatchup defines the number of games of each experiment matchup.
const GamesPerMatchup = 30

// TimeBudget defines the search duration per action in experiments.
const TimeBudget = 10 * time.Millisecond

