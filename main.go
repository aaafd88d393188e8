package main

import (
	"flag"
	"fmt"
	"homeworlds/agent"
	"homeworlds/engine"
	"homeworlds/experiments"
	"homeworlds/game"
	"homeworlds/meta"
	"homeworlds/render"
	"homeworlds/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "selfplay", "selfplay, parallelization, cutoff or throughput")
	goroutines := flag.Int("goroutines", meta.Goroutines, "Number of goroutines for parallel playouts")
	episodes := flag.Int("episodes", meta.Episodes, "Number of playouts per action")
	duration := flag.Duration("duration", 0, "Duration of playouts per action, instead of a number of episodes")
	cutoff := flag.Int("cutoff", meta.Cutoff, "Rollout depth before evaluating")
	temperature := flag.Float64("temperature", 0, "Sample actions at this temperature instead of playing the most visited")
	maxActions := flag.Int("max-actions", meta.MaxActions, "Actions after which a game is abandoned")
	games := flag.Int("games", meta.GamesPerMatchup, "Games per experiment matchup")
	dir := flag.String("dir", "results", "Directory of experiment results")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	buildUpToLargest := flag.Bool("build-up-to-largest", false, "Build any size up to the largest own ship instead of the smallest of the color")
	captureUpToRed := flag.Bool("capture-up-to-red", false, "Capture up to the largest own red ship instead of the largest own ship")
	noDecline := flag.Bool("no-decline", false, "Require every sacrifice-granted action to be used")
	strict := flag.Bool("strict", false, "Check piece conservation after every action")
	show := flag.Bool("render", false, "Print the final position")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	rules := game.NewStandardRules()
	if *buildUpToLargest {
		rules.Build = game.BuildUpToLargestShip
	}
	if *captureUpToRed {
		rules.Capture = game.CaptureUpToLargestRed
	}
	rules.DeclineGranted = !*noDecline
	rules.Strict = *strict

	cfg := experiments.DefaultConfig()
	cfg.Dir = *dir
	cfg.NumGames = *games
	cfg.MaxActions = *maxActions
	cfg.Rules = rules
	cfg.Seed = *seed
	if *duration > 0 {
		cfg.TimeBudget = *duration
	}

	switch *mode {
	case "selfplay":
		newAgent := func(seed uint64) agent.Agent {
			mcts := searcher.NewMCTS(*goroutines,
				searcher.WithEpisodes(*episodes),
				searcher.WithDuration(*duration),
				searcher.WithCutoff(*cutoff),
				searcher.WithSeed(seed),
				searcher.WithMetrics(),
			)
			if *temperature > 0 {
				return agent.NewTrainingAgent(mcts, *temperature, seed)
			}
			return agent.NewEvaluationAgent(mcts)
		}
		if *duration > 0 {
			*episodes = 0
		}
		e := engine.NewLocalEngine(rules, [2]agent.Agent{newAgent(*seed), newAgent(*seed + 1)}, *maxActions)
		gameMetric, _, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("self-play failed")
		}
		log.Info().Msgf("game %s: winner %q after %d actions in %s", gameMetric.ID, gameMetric.Winner, gameMetric.TotalActions, gameMetric.Duration)
		if *show {
			fmt.Println(render.State(e.State()))
		}
	case "parallelization":
		report(experiments.RunParallelizationExperiment(cfg))
	case "cutoff":
		report(experiments.RunCutoffExperiment(cfg))
	case "throughput":
		if _, err := experiments.RunThroughputExperiment(cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func report(result *experiments.Result, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, s := range result.Summaries {
		log.Info().Msgf("agent %d vs agent %d: %d-%d, %d draws, %d unfinished", s.Agent1, s.Agent2, s.Wins1, s.Wins2, s.Draws, s.Unfinished)
	}
}
