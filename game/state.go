package game

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/blake3"
)

// StateHash identifies a position; equal positions hash equally regardless of ship order.
type StateHash uint64

// openingTurns is the number of turns, one per player, spent establishing homeworlds.
const openingTurns = 2

// GameState is a complete position. It is immutable by convention: Apply returns a new state and
// never modifies its receiver, so states can be shared freely between goroutines.
type GameState struct {
	Rules         *Rules
	Bank          Bank
	Homeworlds    [2]Homeworld
	colonies      colonyArena
	CurrentPlayer Player
	Turn          int      // number of completed turns
	NextColony    ColonyID // id given to the next colony
	Budget        Budget
}

// InitialState returns the starting position under the standard rules.
func InitialState() *GameState {
	return NewGameState(NewStandardRules())
}

// NewGameState returns the starting position: each homeworld holds its two setup stars and no
// ships, and the first player is to establish.
func NewGameState(rules *Rules) *GameState {
	gs := &GameState{
		Rules:         rules,
		Bank:          NewBank(),
		CurrentPlayer: First,
		NextColony:    1,
		Budget:        NewBudget(),
	}
	for _, p := range Players {
		hw := Homeworld{Owner: p}
		for _, t := range rules.Setup[p] {
			star, err := gs.Bank.Pop(t)
			if err != nil {
				panic(fmt.Sprintf("invalid homeworld setup: %v", err))
			}
			hw.Stars = append(hw.Stars, star)
		}
		gs.Homeworlds[p] = hw
	}
	return gs
}

// Clone returns a deep copy of the state. Rules are shared.
func (gs *GameState) Clone() *GameState {
	out := *gs
	for i := range out.Homeworlds {
		hw := &out.Homeworlds[i]
		hw.Stars = clonePieces(hw.Stars)
		hw.Ships = cloneShips(hw.Ships)
	}
	out.colonies = gs.colonies.clone()
	out.Budget = gs.Budget.clone()
	return &out
}

// Player returns the player to act.
func (gs *GameState) Player() Player {
	return gs.CurrentPlayer
}

// Opening reports whether homeworlds are still being established.
func (gs *GameState) Opening() bool {
	return gs.Turn < openingTurns
}

// Colony returns the live colony with the id, or nil.
func (gs *GameState) Colony(id ColonyID) *Colony {
	return gs.colonies.get(id)
}

// Colonies returns the live colonies ordered by id.
func (gs *GameState) Colonies() []*Colony {
	return gs.colonies.live()
}

// AddColony places a colony with a fresh id and returns the id. It builds positions directly,
// e.g. for tests or puzzles; the caller takes the pieces out of the bank.
func (gs *GameState) AddColony(star Piece, ships ...Ship) ColonyID {
	id := gs.NextColony
	if !gs.colonies.insert(Colony{ID: id, Star: star, Ships: ships}) {
		panic("colony arena is full")
	}
	gs.NextColony++
	return id
}

// Systems returns every system in play: both homeworlds, then colonies by id.
func (gs *GameState) Systems() []System {
	colonies := gs.colonies.live()
	systems := make([]System, 0, len(gs.Homeworlds)+len(colonies))
	for i := range gs.Homeworlds {
		systems = append(systems, gs.Homeworlds[i].System())
	}
	for _, c := range colonies {
		systems = append(systems, c.System())
	}
	return systems
}

// System returns the view of a system in play.
func (gs *GameState) System(id SystemID) (System, bool) {
	if id.IsHomeworld() {
		if int(id.Home) >= len(gs.Homeworlds) {
			return System{}, false
		}
		return gs.Homeworlds[id.Home].System(), true
	}
	c := gs.colonies.get(id.Colony)
	if c == nil {
		return System{}, false
	}
	return c.System(), true
}

// ships returns a pointer to the ship list of a system for in-place updates on a cloned state.
func (gs *GameState) ships(id SystemID) *[]Ship {
	if id.IsHomeworld() {
		return &gs.Homeworlds[id.Home].Ships
	}
	if c := gs.colonies.get(id.Colony); c != nil {
		return &c.Ships
	}
	return nil
}

// losers returns the players whose homeworld has lost every star after the opening.
func (gs *GameState) losers() []Player {
	if gs.Opening() {
		return nil
	}
	var out []Player
	for _, p := range Players {
		if len(gs.Homeworlds[p].Stars) == 0 {
			out = append(out, p)
		}
	}
	return out
}

// Over reports whether the game has ended, by a win or a draw.
func (gs *GameState) Over() bool {
	return len(gs.losers()) > 0
}

// Winner returns the winning player, if exactly one homeworld has been destroyed.
func (gs *GameState) Winner() (Player, bool) {
	losers := gs.losers()
	if len(losers) != 1 {
		return 0, false
	}
	return losers[0].Opponent(), true
}

// Hash returns a blake3-based digest of the position.
func (gs *GameState) Hash() StateHash {
	hasher := blake3.New(32, nil)

	binary.Write(hasher, binary.LittleEndian, uint8(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, gs.Bank)

	// Budget
	binary.Write(hasher, binary.LittleEndian, int64(gs.Budget.Any))
	for _, g := range gs.Budget.Pending {
		binary.Write(hasher, binary.LittleEndian, [2]int64{int64(g.Kind), int64(g.Count)})
	}

	// Systems, with ships counted per owner and type so that ordering does not matter
	for _, s := range gs.Systems() {
		id := s.ID()
		binary.Write(hasher, binary.LittleEndian, [2]uint16{uint16(id.Home), uint16(id.Colony)})
		var stars [NumPieceTypes]uint8
		for _, star := range s.Stars() {
			stars[star.Type]++
		}
		var ships [2][NumPieceTypes]uint8
		for _, ship := range s.Ships() {
			ships[ship.Owner][ship.Type]++
		}
		binary.Write(hasher, binary.LittleEndian, stars)
		binary.Write(hasher, binary.LittleEndian, ships)
	}

	sum := hasher.Sum(nil)
	return StateHash(binary.LittleEndian.Uint64(sum[:8]))
}

// Validate checks piece conservation: the bank and the board together hold each of the 36
// pieces exactly once.
func (gs *GameState) Validate() error {
	var seen [NumPieceTypes][Copies]int
	for t := range gs.Bank {
		for id := 0; id < Copies; id++ {
			if gs.Bank[t]&(1<<id) != 0 {
				seen[t][id]++
			}
		}
	}
	for _, s := range gs.Systems() {
		for _, star := range s.Stars() {
			if star.ID >= Copies {
				return fmt.Errorf("star %s has an invalid instance id", star)
			}
			seen[star.Type][star.ID]++
		}
		for _, ship := range s.Ships() {
			if ship.ID >= Copies {
				return fmt.Errorf("ship %s has an invalid instance id", ship.Piece)
			}
			seen[ship.Type][ship.ID]++
		}
	}
	for t := range seen {
		for id, n := range seen[t] {
			if n != 1 {
				return fmt.Errorf("piece %s found %d times", Piece{Type: PieceType(t), ID: uint8(id)}, n)
			}
		}
	}
	return nil
}
