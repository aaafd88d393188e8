package searcher

import (
	"homeworlds/game"
	"math"
	"sync"
)

// decision is a tree node for a state. Its statistics are from the perspective of mover, the
// player whose action led here, which lets the parent maximize over its children even when the
// same player acts several times in a row.
type decision struct {
	sync.RWMutex
	parent     *decision
	player     game.Player // player to act
	mover      game.Player
	hash       game.StateHash
	unexplored []game.Action
	explored   []game.Action
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, state *game.GameState) *decision {
	actions := state.LegalActions()
	mover := state.Player()
	if parent != nil {
		mover = parent.player
	}

	return &decision{
		parent:     parent,
		player:     state.Player(),
		mover:      mover,
		hash:       state.Hash(),
		unexplored: actions,
		explored:   make([]game.Action, 0, len(actions)),
		children:   make([]*decision, 0, len(actions)),
	}
}

// SelectOrExpand returns the next node on the search path and its state. selected reports that
// an existing child was chosen and the descent continues; otherwise the node returned is either
// a freshly expanded child or the node itself when terminal.
func (d *decision) SelectOrExpand(state *game.GameState) (child *decision, childState *game.GameState, selected bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		action := d.unexplored[0]
		d.unexplored = d.unexplored[1:]
		childState := state.Play(action)
		child := newDecision(d, childState)
		d.explored = append(d.explored, action)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) pickChild() int {
	// A fully expanded root may not have completed a backup yet
	policy := newUCT(CSquared, math.Max(d.visits, 1))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(policy)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(policy uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.evaluate(d.rewards, d.visits)
}

// Backup records a playout scored from scorer's perspective and returns the parent.
func (d *decision) Backup(scorer game.Player, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.mover, scorer, score)
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// child returns the explored child reached by the action, or nil.
func (d *decision) child(action game.Action) *decision {
	d.RLock()
	defer d.RUnlock()

	for i, explored := range d.explored {
		if explored == action {
			return d.children[i]
		}
	}
	return nil
}

// Policy returns the visit count of each explored action.
func (d *decision) Policy() map[game.Action]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Action]float64, len(d.children))
	for i, child := range d.children {
		policy[d.explored[i]] = child.Visits()
	}
	return policy
}
