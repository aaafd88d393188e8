package experiments

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment plays each goroutine count against itself, for the same playing
// strength and similar game length, and reports episodes per second by agent config ID.
func RunThroughputExperiment(cfg Config) (map[int]float64, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range goroutineCounts {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, Duration: cfg.TimeBudget, Cutoff: meta.Cutoff}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	result, err := runExperiment(cfg, "throughput", configs, matchUps)
	if err != nil {
		return nil, err
	}
	throughput := result.Throughput()
	for id, rate := range throughput {
		log.Info().Msgf("agent %d: %.0f episodes/s", id, rate)
	}
	return throughput, nil
}

// Throughput returns the search episodes per second of each agent config ID.
func (r *Result) Throughput() map[int]float64 {
	agents := make(map[string][2]int, len(r.Games))
	for _, g := range r.Games {
		agents[g.ID.String()] = [2]int{g.Agent1, g.Agent2}
	}

	episodes := map[int]int{}
	durations := map[int]time.Duration{}
	for _, m := range r.Moves {
		pair, ok := agents[m.Game]
		if !ok {
			continue
		}
		id := pair[0]
		if m.Player == game.Second {
			id = pair[1]
		}
		episodes[id] += m.Episodes
		durations[id] += m.Duration
	}

	throughput := make(map[int]float64, len(episodes))
	for id, n := range episodes {
		if d := durations[id]; d > 0 {
			throughput[id] = float64(n) / d.Seconds()
		}
	}
	return throughput
}
