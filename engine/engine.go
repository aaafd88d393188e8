package engine

import "homeworlds/experiments/metrics"

// MaxActions stops a game that has not ended by then.
const MaxActions = 10000

type Engine interface {
	// Run plays a game till there's a winner or a max number of actions is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
