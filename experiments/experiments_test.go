package experiments

import (
	"homeworlds/engine"
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRunExperiment(t *testing.T) {
	cfg := Config{
		Dir:        t.TempDir(),
		NumGames:   2,
		MaxActions: 8,
		Rules:      game.NewStandardRules(),
		Seed:       1,
	}
	configs := []metrics.AgentConfig{
		{ID: 1, Goroutines: 1, Episodes: 20, Cutoff: 10},
		{ID: 2, Goroutines: 2, Episodes: 20, Cutoff: 10},
	}

	result, err := runExperiment(cfg, "smoke", configs, [][2]metrics.AgentConfig{{configs[0], configs[1]}})
	require.NoError(t, err)

	require.Len(t, result.Games, 2)
	require.Equal(t, 1, result.Games[0].Agent1)
	require.Equal(t, 2, result.Games[1].Agent1, "Second game should swap the starting agent")
	require.Len(t, result.Moves, result.Games[0].TotalActions+result.Games[1].TotalActions)

	require.Len(t, result.Summaries, 1)
	s := result.Summaries[0]
	require.Equal(t, 2, s.Wins1+s.Wins2+s.Draws+s.Unfinished)

	runs, err := os.ReadDir(filepath.Join(cfg.Dir, "smoke"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(cfg.Dir, "smoke", runs[0].Name(), name))
	}

	throughput := result.Throughput()
	require.Contains(t, throughput, 1)
	require.Contains(t, throughput, 2)
}

func TestSummaryRecord(t *testing.T) {
	var s Summary
	s.record(game.First.String(), false)
	s.record(game.First.String(), true)
	s.record(game.Second.String(), true)
	s.record(engine.Draw, false)
	s.record("", true)

	require.Equal(t, Summary{Wins1: 2, Wins2: 1, Draws: 1, Unfinished: 1}, s)
}

func TestThroughput(t *testing.T) {
	id := uuid.New()
	r := &Result{
		Games: []metrics.GameRecord{{Agent1: 3, Agent2: 4, GameMetric: metrics.GameMetric{ID: id}}},
		Moves: []metrics.MoveRecord{
			{Game: id.String(), MoveMetric: metrics.MoveMetric{Player: game.First, SearchMetric: metrics.SearchMetric{Episodes: 100, Duration: time.Second}}},
			{Game: id.String(), MoveMetric: metrics.MoveMetric{Player: game.Second, SearchMetric: metrics.SearchMetric{Episodes: 50, Duration: time.Second}}},
			{Game: id.String(), MoveMetric: metrics.MoveMetric{Player: game.First, SearchMetric: metrics.SearchMetric{Episodes: 300, Duration: time.Second}}},
			{Game: "unknown", MoveMetric: metrics.MoveMetric{SearchMetric: metrics.SearchMetric{Episodes: 7, Duration: time.Second}}},
		},
	}

	require.Equal(t, map[int]float64{3: 200, 4: 50}, r.Throughput())
}
