package game

// BuildRule selects which ship sizes a Build may place.
type BuildRule uint8

const (
	// BuildSmallestOfColor builds, for each color of the player's ships at the system, the
	// smallest size of that color left in the bank.
	BuildSmallestOfColor BuildRule = iota
	// BuildUpToLargestShip builds any stocked type no larger than the player's largest ship there.
	BuildUpToLargestShip
)

// CaptureRule selects which enemy ships a Capture may take.
type CaptureRule uint8

const (
	// CaptureUpToLargestShip captures ships no larger than the capturer's largest ship there.
	CaptureUpToLargestShip CaptureRule = iota
	// CaptureUpToLargestRed captures ships no larger than the capturer's largest red ship there.
	CaptureUpToLargestRed
)

// Rules holds the rule variants a game is played with. A Rules value is shared read-only by
// every state of a game.
type Rules struct {
	Build   BuildRule
	Capture CaptureRule
	// DeclineGranted lets a player pass instead of using remaining sacrifice-granted actions.
	DeclineGranted bool
	// CatastropheThreshold is the number of same-colored pieces that makes a system overpopulated.
	CatastropheThreshold int
	// Setup holds the two stars of each player's homeworld.
	Setup [2][2]PieceType
	// Strict panics when a transition breaks piece conservation.
	Strict bool
}

// NewStandardRules returns the canonical rule set.
func NewStandardRules() *Rules {
	return &Rules{
		Build:                BuildSmallestOfColor,
		Capture:              CaptureUpToLargestShip,
		DeclineGranted:       true,
		CatastropheThreshold: 4,
		Setup: [2][2]PieceType{
			{SmallBlue, LargeYellow},
			{MediumBlue, LargeYellow},
		},
	}
}

// buildable returns the ship types the player may build at the system.
func (r *Rules) buildable(s System, p Player, bank *Bank) []PieceType {
	var types []PieceType
	switch r.Build {
	case BuildUpToLargestShip:
		largest := s.LargestShip(p, nil)
		for _, t := range PieceTypes() {
			if t.Size() <= largest && bank.Contains(t) {
				types = append(types, t)
			}
		}
	default:
		var done ColorSet
		for _, own := range s.ShipTypes(p) {
			c := own.Color()
			if done.Has(c) {
				continue
			}
			done = done.With(c)
			if t, ok := bank.Smallest(c); ok {
				types = append(types, t)
			}
		}
	}
	return types
}

// capturable reports whether the player may capture an enemy ship of the type at the system.
func (r *Rules) capturable(s System, p Player, victim PieceType) bool {
	var largest Size
	switch r.Capture {
	case CaptureUpToLargestRed:
		largest = s.LargestShip(p, func(c Color) bool { return c == Red })
	default:
		largest = s.LargestShip(p, nil)
	}
	return victim.Size() <= largest
}
