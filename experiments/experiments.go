package experiments

import (
	"fmt"
	"homeworlds/agent"
	"homeworlds/engine"
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"homeworlds/meta"
	"homeworlds/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds the settings shared by every experiment.
type Config struct {
	Dir        string        // root directory of the CSV results
	NumGames   int           // per matchup
	TimeBudget time.Duration // per search
	MaxActions int           // per game
	Rules      *game.Rules
	Seed       uint64
}

// DefaultConfig returns the settings used from the command line.
func DefaultConfig() Config {
	return Config{
		Dir:        "results",
		NumGames:   meta.GamesPerMatchup,
		TimeBudget: meta.TimeBudget,
		MaxActions: meta.MaxActions,
		Rules:      game.NewStandardRules(),
		Seed:       uint64(time.Now().UnixNano()),
	}
}

// Result collects everything recorded during an experiment.
type Result struct {
	Summaries []Summary
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

// Summary counts the results of one matchup.
type Summary struct {
	Agent1, Agent2 int
	Wins1, Wins2   int
	Draws          int
	Unfinished     int
}

var goroutineCounts = []int{1, 4, 8, 16, 32}

// RunParallelizationExperiment pairs each parallel agent against the sequential baseline.
func RunParallelizationExperiment(cfg Config) (*Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Duration: cfg.TimeBudget, Cutoff: meta.Cutoff}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range goroutineCounts {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, Duration: cfg.TimeBudget, Cutoff: meta.Cutoff}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(cfg, "parallelization", configs, matchUps)
}

// RunCutoffExperiment pairs agents of different rollout cutoffs against a full-playout baseline.
func RunCutoffExperiment(cfg Config) (*Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: meta.Goroutines, Duration: cfg.TimeBudget, Cutoff: searcher.MaxCutoff}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, cutoff := range []int{10, 25, 50, 100} {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: cutoff}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(cfg, "cutoff", configs, matchUps)
}

func runExperiment(cfg Config, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (*Result, error) {
	result := &Result{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		summary := Summary{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.NumGames; i++ {
			seed := cfg.Seed + uint64(mi*cfg.NumGames+i)*2
			// Alternate the starting agent
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameMetric, moveMetrics, err := runGame(cfg, first, second, seed)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			result.Games = append(result.Games, metrics.GameRecord{
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       gameMetric.ID.String(),
					MoveMetric: mm,
				})
			}
			summary.record(gameMetric.Winner, i%2 == 1)

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		result.Summaries = append(result.Summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := store(cfg.Dir, name, configs, result.Games, result.Moves); err != nil {
		return nil, err
	}
	return result, nil
}

// record counts a game result; swapped means agent2 of the matchup played first.
func (s *Summary) record(winner string, swapped bool) {
	switch winner {
	case "":
		s.Unfinished++
	case engine.Draw:
		s.Draws++
	case game.First.String():
		if swapped {
			s.Wins2++
		} else {
			s.Wins1++
		}
	default:
		if swapped {
			s.Wins1++
		} else {
			s.Wins2++
		}
	}
}

func store(dir, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents
func runGame(cfg Config, config1, config2 metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		agent.NewEvaluationAgent(createMCTS(config1, seed)),
		agent.NewEvaluationAgent(createMCTS(config2, seed+1)),
	}
	e := engine.NewLocalEngine(cfg.Rules, agents, cfg.MaxActions)
	return e.Run()
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
