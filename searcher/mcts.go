package searcher

import (
	"homeworlds/experiments/metrics"
	"homeworlds/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxCutoff bounds a rollout when no cutoff is given.
const MaxCutoff = 500

type Option func(mcts *MCTS)

// Segment is one played action and the hash of the state it produced. A lineage of segments
// leads from the previous search root to the current state.
type Segment struct {
	Action    game.Action
	StateHash game.StateHash
}

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   Evaluate
	seed       uint64
	searches   uint64
	root       *decision
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithSeed fixes the rollout randomness.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		evaluate:   EvaluateMaterial,
		seed:       uint64(time.Now().UnixNano()),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from the state and returns the visit count of each root action. The lineage
// lists the actions played since the previous search so its subtree can be reused.
func (m *MCTS) Simulate(state *game.GameState, lineage []Segment) (map[game.Action]float64, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.cutoff)
	m.findRoot(lineage, state)

	// Run simulations to collect statistics
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}
	m.searches++
	metric := m.metrics.Complete()

	log.Debug().Msgf("searched %s: %d episodes, %d full playouts in %s", state.Player(), metric.Episodes, metric.FullPlayouts, metric.Duration)

	// Output action policy and search metrics
	return m.root.Policy(), metric
}

// rng returns the rollout source of one worker of the current search.
func (m *MCTS) rng(worker int) *rand.Rand {
	return rand.New(rand.NewSource(m.seed + m.searches<<16 + uint64(worker)))
}

func (m *MCTS) iterate(state *game.GameState) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	root := m.root
	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(root, state, rng)
				m.metrics.AddEpisode()
			}
		}(m.rng(i))
	}

	wg.Wait()
}

func (m *MCTS) countdown(state *game.GameState) {
	done := make(chan any)

	root := m.root
	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state, rng)
					m.metrics.AddEpisode()
				}
			}
		}(m.rng(i))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) findRoot(path []Segment, state *game.GameState) {
	root := traverse(m.root, path)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, state)
		m.metrics.SetTreeReset(true)
	} else {
		root.parent = nil
		m.root = root
		m.metrics.SetTreeReset(false)
	}
}

func traverse(root *decision, path []Segment) *decision {
	if root == nil {
		return nil
	}

	node := root
	for _, segment := range path {
		child := node.child(segment.Action)
		if child == nil { // Node has not expanded this action
			return nil
		}
		if child.hash != segment.StateHash {
			log.Warn().Msgf("node's state hash %d does not match segment's state hash %d", child.hash, segment.StateHash)
			return nil
		}
		node = child
	}
	return node
}

func (m *MCTS) simulate(root *decision, state *game.GameState, rng *rand.Rand) {
	newNode, newState := selectThenExpand(root, state)
	player, score := rollout(newState, m.cutoff, m.evaluate, m.metrics, rng)
	backup(newNode, player, score)
}

func selectThenExpand(root *decision, state *game.GameState) (*decision, *game.GameState) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

func rollout(state *game.GameState, cutoff int, evaluate Evaluate, metrics metrics.Collector, rng *rand.Rand) (game.Player, float64) {
	depth := 0
	actions := state.LegalActions()
	// Rollout till game over or for cutoff number of actions
	for len(actions) > 0 && (depth < cutoff) {
		action := actions[rng.Intn(len(actions))] // Random rollout policy
		state = state.Play(action)
		actions = state.LegalActions()
		depth++
	}

	if len(actions) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		return terminalScore(state)
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

func backup(newNode *decision, player game.Player, score float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(player, score)
		node = parent
	}
}
