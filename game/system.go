package game

import "fmt"

// Player identifies one of the two sides.
type Player uint8

const (
	First Player = iota
	Second
)

// Players lists both players in turn order.
var Players = [...]Player{First, Second}

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", p+1)
}

// Ship is a piece controlled by a player.
type Ship struct {
	Piece
	Owner Player
}

// ColonyID identifies a colony for the life of a game. Ids start at 1 and are never reused.
type ColonyID uint16

// SystemID names a system: either a player's homeworld or a colony.
// The zero Colony field denotes a homeworld.
type SystemID struct {
	Home   Player
	Colony ColonyID
}

// HomeworldOf returns the id of the player's homeworld.
func HomeworldOf(p Player) SystemID {
	return SystemID{Home: p}
}

// ColonyOf returns the id of a colony.
func ColonyOf(id ColonyID) SystemID {
	return SystemID{Colony: id}
}

func (id SystemID) IsHomeworld() bool {
	return id.Colony == 0
}

func (id SystemID) String() string {
	if id.IsHomeworld() {
		return fmt.Sprintf("home(%s)", id.Home)
	}
	return fmt.Sprintf("colony(%d)", id.Colony)
}

// Homeworld is a player's starting system. It holds up to two stars.
type Homeworld struct {
	Owner Player
	Stars []Piece
	Ships []Ship
}

// Colony is a system founded during play around exactly one star.
type Colony struct {
	ID    ColonyID
	Star  Piece
	Ships []Ship
}

// System is a read-only view of a homeworld or a colony. The slices alias the state they were
// taken from and must not be modified.
type System struct {
	id    SystemID
	stars []Piece
	ships []Ship
}

func (h *Homeworld) System() System {
	return System{id: HomeworldOf(h.Owner), stars: h.Stars, ships: h.Ships}
}

func (c *Colony) System() System {
	return System{id: ColonyOf(c.ID), stars: []Piece{c.Star}, ships: c.Ships}
}

func (s System) ID() SystemID {
	return s.id
}

func (s System) Stars() []Piece {
	return s.stars
}

func (s System) Ships() []Ship {
	return s.ships
}

// Sizes returns the sizes of the remaining stars.
func (s System) Sizes() SizeSet {
	var set SizeSet
	for _, star := range s.stars {
		set = set.With(star.Type.Size())
	}
	return set
}

// Colors returns the colors the player may use here: star colors plus the player's ship colors.
func (s System) Colors(p Player) ColorSet {
	var set ColorSet
	for _, star := range s.stars {
		set = set.With(star.Type.Color())
	}
	for _, ship := range s.ships {
		if ship.Owner == p {
			set = set.With(ship.Type.Color())
		}
	}
	return set
}

// Count returns how many pieces of the color are here, stars and ships of both players.
func (s System) Count(c Color) int {
	n := 0
	for _, star := range s.stars {
		if star.Type.Color() == c {
			n++
		}
	}
	for _, ship := range s.ships {
		if ship.Type.Color() == c {
			n++
		}
	}
	return n
}

// ShipTypes returns the distinct types of the player's ships here, in first-seen order.
func (s System) ShipTypes(p Player) []PieceType {
	var seen [NumPieceTypes]bool
	var types []PieceType
	for _, ship := range s.ships {
		if ship.Owner == p && !seen[ship.Type] {
			seen[ship.Type] = true
			types = append(types, ship.Type)
		}
	}
	return types
}

// HasShips reports whether the player has at least one ship here.
func (s System) HasShips(p Player) bool {
	for _, ship := range s.ships {
		if ship.Owner == p {
			return true
		}
	}
	return false
}

// LargestShip returns the size of the player's largest ship here, optionally restricted to one
// color. It returns 0 when there is none.
func (s System) LargestShip(p Player, only func(Color) bool) Size {
	var largest Size
	for _, ship := range s.ships {
		if ship.Owner != p || (only != nil && !only(ship.Type.Color())) {
			continue
		}
		if size := ship.Type.Size(); size > largest {
			largest = size
		}
	}
	return largest
}

func clonePieces(pieces []Piece) []Piece {
	if pieces == nil {
		return nil
	}
	out := make([]Piece, len(pieces))
	copy(out, pieces)
	return out
}

func cloneShips(ships []Ship) []Ship {
	if ships == nil {
		return nil
	}
	out := make([]Ship, len(ships))
	copy(out, ships)
	return out
}

// removeShip removes one ship of the given owner and type and returns it.
func removeShip(ships []Ship, owner Player, t PieceType) ([]Ship, Ship, bool) {
	for i := len(ships) - 1; i >= 0; i-- {
		if ships[i].Owner == owner && ships[i].Type == t {
			ship := ships[i]
			return append(ships[:i], ships[i+1:]...), ship, true
		}
	}
	return ships, Ship{}, false
}
