package game

import "fmt"

// Grant is a block of actions of one kind earned by a sacrifice.
type Grant struct {
	Kind  ActionKind
	Count int
}

// Budget tracks what the current player may still do this turn: one action of any kind, then
// the queue of sacrifice grants, consumed from the front.
type Budget struct {
	Any     int
	Pending []Grant
}

// NewBudget returns the budget a turn starts with.
func NewBudget() Budget {
	return Budget{Any: 1}
}

// Spent reports whether nothing is left to do this turn.
func (b Budget) Spent() bool {
	return b.Any == 0 && len(b.Pending) == 0
}

// Granted returns the kind restricting the next action, if a grant is pending.
func (b Budget) Granted() (ActionKind, bool) {
	if len(b.Pending) == 0 {
		return 0, false
	}
	return b.Pending[0].Kind, true
}

// Remaining returns the number of actions left, generic and granted.
func (b Budget) Remaining() int {
	n := b.Any
	for _, g := range b.Pending {
		n += g.Count
	}
	return n
}

// Allows reports whether an action of the kind may be taken next. Catastrophes are free and
// always allowed; Pass is decided by the generator.
func (b Budget) Allows(kind ActionKind) bool {
	switch kind {
	case CatastropheAction, PassAction:
		return true
	}
	if granted, ok := b.Granted(); ok {
		return kind == granted || kind == SacrificeAction
	}
	return b.Any > 0
}

func (b Budget) clone() Budget {
	if b.Pending != nil {
		b.Pending = append([]Grant(nil), b.Pending...)
	}
	return b
}

// consume spends one action: the front grant if any, otherwise the generic action.
func (b *Budget) consume() error {
	if len(b.Pending) > 0 {
		b.Pending[0].Count--
		if b.Pending[0].Count == 0 {
			b.Pending = b.Pending[1:]
		}
		return nil
	}
	if b.Any == 0 {
		return fmt.Errorf("%w: no actions left this turn", ErrIllegalAction)
	}
	b.Any--
	return nil
}

func (b *Budget) grant(kind ActionKind, count int) {
	b.Pending = append(b.Pending, Grant{Kind: kind, Count: count})
}
