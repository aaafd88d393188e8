package game

import "sort"

// MaxColonies bounds the number of live colonies: each one holds a star and at least one ship.
const MaxColonies = NumPieces / 2

// colonyArena is a fixed-capacity slot table. A slot whose colony id is zero is a tombstone and
// may be reused; colony ids themselves are never reused.
type colonyArena [MaxColonies]Colony

func (a *colonyArena) get(id ColonyID) *Colony {
	if id == 0 {
		return nil
	}
	for i := range a {
		if a[i].ID == id {
			return &a[i]
		}
	}
	return nil
}

// insert stores the colony in the first free slot. It reports false when the arena is full.
func (a *colonyArena) insert(c Colony) bool {
	for i := range a {
		if a[i].ID == 0 {
			a[i] = c
			return true
		}
	}
	return false
}

func (a *colonyArena) remove(id ColonyID) {
	if c := a.get(id); c != nil {
		*c = Colony{}
	}
}

// live returns pointers to the live colonies ordered by id.
func (a *colonyArena) live() []*Colony {
	var out []*Colony
	for i := range a {
		if a[i].ID != 0 {
			out = append(out, &a[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (a *colonyArena) len() int {
	n := 0
	for i := range a {
		if a[i].ID != 0 {
			n++
		}
	}
	return n
}

func (a *colonyArena) clone() colonyArena {
	out := *a
	for i := range out {
		out[i].Ships = cloneShips(out[i].Ships)
	}
	return out
}
