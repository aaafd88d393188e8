package game

// LegalActions returns every action the current player may take. It returns nil once the game
// is over. Identical actions are listed once.
func (gs *GameState) LegalActions() []Action {
	if gs.Over() {
		return nil
	}
	if gs.Opening() {
		return gs.establishActions()
	}

	g := generator{gs: gs, player: gs.CurrentPlayer, systems: gs.Systems()}
	if granted, ok := gs.Budget.Granted(); ok {
		g.add(granted, true)
		g.sacrifices()
		if gs.Rules.DeclineGranted {
			g.actions = append(g.actions, Pass())
		}
	} else if gs.Budget.Any > 0 {
		for _, kind := range [...]ActionKind{MoveAction, BuildAction, TradeAction, CaptureAction} {
			g.add(kind, false)
		}
		g.sacrifices()
	}

	catastrophes := g.catastrophes()
	if gs.Budget.Spent() && len(catastrophes) > 0 {
		// Only free actions remain; the player may stop here.
		g.actions = append(g.actions, Pass())
	}
	g.actions = append(g.actions, catastrophes...)

	if len(g.actions) == 0 {
		return []Action{Pass()}
	}
	return g.actions
}

func (gs *GameState) establishActions() []Action {
	var actions []Action
	for _, t := range PieceTypes() {
		if gs.Bank.Contains(t) {
			actions = append(actions, Establish(t))
		}
	}
	return actions
}

// generator enumerates actions for one player over a fixed list of systems.
type generator struct {
	gs      *GameState
	player  Player
	systems []System
	actions []Action
}

// unlocked reports whether the color's action is available at the system. A sacrifice grant
// powers its kind everywhere.
func (g *generator) unlocked(s System, c Color, granted bool) bool {
	return granted || CanUse(s, g.player, c)
}

func (g *generator) add(kind ActionKind, granted bool) {
	switch kind {
	case MoveAction:
		g.moves(granted)
	case BuildAction:
		g.builds(granted)
	case TradeAction:
		g.trades(granted)
	case CaptureAction:
		g.captures(granted)
	}
}

func (g *generator) moves(granted bool) {
	bank := &g.gs.Bank
	for _, src := range g.systems {
		if !src.HasShips(g.player) || !g.unlocked(src, Yellow, granted) {
			continue
		}
		sizes := src.Sizes()
		var dests []Destination
		for _, dst := range g.systems {
			if dst.ID() != src.ID() && ReachableSystems(src, dst) {
				dests = append(dests, ToSystem(dst.ID()))
			}
		}
		if !sizes.Empty() {
			for _, t := range PieceTypes() {
				if !sizes.Has(t.Size()) && bank.Contains(t) {
					dests = append(dests, ToNewColony(t))
				}
			}
		}
		for _, ship := range src.ShipTypes(g.player) {
			for _, dest := range dests {
				g.actions = append(g.actions, Move(src.ID(), dest, ship))
			}
		}
	}
}

func (g *generator) builds(granted bool) {
	for _, s := range g.systems {
		if !s.HasShips(g.player) || !g.unlocked(s, Green, granted) {
			continue
		}
		for _, t := range g.gs.Rules.buildable(s, g.player, &g.gs.Bank) {
			g.actions = append(g.actions, Build(s.ID(), t))
		}
	}
}

func (g *generator) trades(granted bool) {
	bank := &g.gs.Bank
	for _, s := range g.systems {
		if !s.HasShips(g.player) || !g.unlocked(s, Blue, granted) {
			continue
		}
		for _, own := range s.ShipTypes(g.player) {
			for _, c := range Colors {
				t := NewPieceType(own.Size(), c)
				if c != own.Color() && bank.Contains(t) {
					g.actions = append(g.actions, Trade(s.ID(), own, t))
				}
			}
		}
	}
}

func (g *generator) captures(granted bool) {
	enemy := g.player.Opponent()
	for _, s := range g.systems {
		if !s.HasShips(g.player) || !g.unlocked(s, Red, granted) {
			continue
		}
		for _, victim := range s.ShipTypes(enemy) {
			if g.gs.Rules.capturable(s, g.player, victim) {
				g.actions = append(g.actions, Capture(s.ID(), victim))
			}
		}
	}
}

func (g *generator) sacrifices() {
	for _, s := range g.systems {
		for _, own := range s.ShipTypes(g.player) {
			g.actions = append(g.actions, Sacrifice(s.ID(), own))
		}
	}
}

func (g *generator) catastrophes() []Action {
	var actions []Action
	for _, s := range g.systems {
		for _, c := range Colors {
			if s.Count(c) >= g.gs.Rules.CatastropheThreshold {
				actions = append(actions, Catastrophe(s.ID(), c))
			}
		}
	}
	return actions
}

// catastropheAvailable reports whether any system is overpopulated.
func (gs *GameState) catastropheAvailable() bool {
	g := generator{gs: gs, systems: gs.Systems()}
	return len(g.catastrophes()) > 0
}
