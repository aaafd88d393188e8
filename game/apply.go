package game

import "fmt"

// Apply returns the state after the current player takes the action. The action must be one of
// LegalActions; otherwise the error wraps ErrIllegalAction. The receiver is never modified.
func (gs *GameState) Apply(a Action) (*GameState, error) {
	if !gs.IsLegal(a) {
		return nil, fmt.Errorf("%w: %s by %s", ErrIllegalAction, a, gs.CurrentPlayer)
	}

	next := gs.Clone()
	if err := next.apply(a); err != nil {
		return nil, err
	}
	next.endTurnIfDone(a.Kind == PassAction)

	if gs.Rules.Strict {
		if err := next.Validate(); err != nil {
			panic(fmt.Sprintf("%s broke piece conservation: %v", a, err))
		}
	}
	return next, nil
}

// Play is Apply for actions known to be legal, such as those just returned by LegalActions.
// It panics on an illegal action.
func (gs *GameState) Play(a Action) *GameState {
	next, err := gs.Apply(a)
	if err != nil {
		panic(err)
	}
	return next
}

// IsLegal reports whether the action is currently legal.
func (gs *GameState) IsLegal(a Action) bool {
	for _, legal := range gs.LegalActions() {
		if legal == a {
			return true
		}
	}
	return false
}

// apply performs the action in place. It must only be called on a fresh clone.
func (gs *GameState) apply(a Action) error {
	p := gs.CurrentPlayer

	switch a.Kind {
	case PassAction:
		gs.Budget = Budget{}
		return nil

	case CatastropheAction:
		gs.catastrophe(a.System, a.Color)
		return nil

	case EstablishAction:
		piece, err := gs.Bank.Pop(a.Piece)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalAction, err)
		}
		hw := &gs.Homeworlds[p]
		hw.Ships = append(hw.Ships, Ship{Piece: piece, Owner: p})
		return gs.Budget.consume()

	case MoveAction:
		ship, err := gs.takeShip(a.System, p, a.Piece)
		if err != nil {
			return err
		}
		if a.Dest.New {
			star, err := gs.Bank.Pop(a.Dest.NewStar)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrIllegalAction, err)
			}
			if !gs.colonies.insert(Colony{ID: gs.NextColony, Star: star, Ships: []Ship{ship}}) {
				return fmt.Errorf("%w: no room for another colony", ErrIllegalAction)
			}
			gs.NextColony++
		} else {
			dest := gs.ships(a.Dest.System)
			if dest == nil {
				return fmt.Errorf("%w: unknown system %s", ErrIllegalAction, a.Dest.System)
			}
			*dest = append(*dest, ship)
		}
		gs.cleanup(a.System)

	case BuildAction:
		ships := gs.ships(a.System)
		piece, err := gs.Bank.Pop(a.Piece)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalAction, err)
		}
		*ships = append(*ships, Ship{Piece: piece, Owner: p})

	case TradeAction:
		ship, err := gs.takeShip(a.System, p, a.Piece)
		if err != nil {
			return err
		}
		piece, err := gs.Bank.Pop(a.Target)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalAction, err)
		}
		gs.Bank.Return(ship.Piece)
		ships := gs.ships(a.System)
		*ships = append(*ships, Ship{Piece: piece, Owner: p})

	case CaptureAction:
		ships := *gs.ships(a.System)
		captured := false
		for i := range ships {
			if ships[i].Owner == p.Opponent() && ships[i].Type == a.Piece {
				ships[i].Owner = p
				captured = true
				break
			}
		}
		if !captured {
			return fmt.Errorf("%w: no %s to capture at %s", ErrIllegalAction, a.Piece, a.System)
		}

	case SacrificeAction:
		ship, err := gs.takeShip(a.System, p, a.Piece)
		if err != nil {
			return err
		}
		gs.Bank.Return(ship.Piece)
		gs.cleanup(a.System)
		if err := gs.Budget.consume(); err != nil {
			return err
		}
		gs.Budget.grant(ship.Type.Color().Kind(), ship.Type.Size().Rank())
		return nil

	default:
		return fmt.Errorf("%w: unknown action kind %s", ErrIllegalAction, a.Kind)
	}

	return gs.Budget.consume()
}

// takeShip removes one of the player's ships of the type from the system.
func (gs *GameState) takeShip(at SystemID, p Player, t PieceType) (Ship, error) {
	ships := gs.ships(at)
	if ships == nil {
		return Ship{}, fmt.Errorf("%w: unknown system %s", ErrIllegalAction, at)
	}
	rest, ship, ok := removeShip(*ships, p, t)
	if !ok {
		return Ship{}, fmt.Errorf("%w: %s has no %s at %s", ErrIllegalAction, p, t, at)
	}
	*ships = rest
	return ship, nil
}

// catastrophe returns every piece of the color at the system to the bank.
func (gs *GameState) catastrophe(at SystemID, c Color) {
	if at.IsHomeworld() {
		hw := &gs.Homeworlds[at.Home]
		stars := hw.Stars[:0]
		for _, star := range hw.Stars {
			if star.Type.Color() == c {
				gs.Bank.Return(star)
			} else {
				stars = append(stars, star)
			}
		}
		hw.Stars = stars
	} else if col := gs.colonies.get(at.Colony); col != nil && col.Star.Type.Color() == c {
		// The colony loses its only star; its ships go with it in cleanup.
		gs.Bank.Return(col.Star)
		for _, ship := range col.Ships {
			gs.Bank.Return(ship.Piece)
		}
		gs.colonies.remove(at.Colony)
		return
	}

	ships := gs.ships(at)
	if ships == nil {
		return
	}
	kept := (*ships)[:0]
	for _, ship := range *ships {
		if ship.Type.Color() == c {
			gs.Bank.Return(ship.Piece)
		} else {
			kept = append(kept, ship)
		}
	}
	*ships = kept
	gs.cleanup(at)
}

// cleanup dissolves a system that can no longer stand: a colony without ships, or a homeworld
// without stars. Its remaining pieces return to the bank.
func (gs *GameState) cleanup(at SystemID) {
	if at.IsHomeworld() {
		hw := &gs.Homeworlds[at.Home]
		if len(hw.Stars) == 0 {
			for _, ship := range hw.Ships {
				gs.Bank.Return(ship.Piece)
			}
			hw.Ships = nil
		}
		return
	}
	col := gs.colonies.get(at.Colony)
	if col != nil && len(col.Ships) == 0 {
		gs.Bank.Return(col.Star)
		gs.colonies.remove(at.Colony)
	}
}

// endTurnIfDone hands the turn over once the budget is spent and no catastrophe is waiting.
// A pass ends the turn regardless.
func (gs *GameState) endTurnIfDone(pass bool) {
	if !pass {
		if !gs.Budget.Spent() {
			return
		}
		if !gs.Opening() && !gs.Over() && gs.catastropheAvailable() {
			return
		}
	}
	gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	gs.Turn++
	gs.Budget = NewBudget()
}
