package game

import "fmt"

// ActionKind represents the type of action a player can perform.
type ActionKind uint8

const (
	MoveAction ActionKind = iota
	BuildAction
	TradeAction
	CaptureAction
	SacrificeAction
	CatastropheAction
	EstablishAction
	PassAction
)

func (k ActionKind) String() string {
	switch k {
	case MoveAction:
		return "move"
	case BuildAction:
		return "build"
	case TradeAction:
		return "trade"
	case CaptureAction:
		return "capture"
	case SacrificeAction:
		return "sacrifice"
	case CatastropheAction:
		return "catastrophe"
	case EstablishAction:
		return "establish"
	case PassAction:
		return "pass"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Destination is where a Move goes: an existing system, or a new colony around a star of the
// given type drawn from the bank.
type Destination struct {
	System  SystemID
	New     bool
	NewStar PieceType
}

func ToSystem(id SystemID) Destination {
	return Destination{System: id}
}

func ToNewColony(star PieceType) Destination {
	return Destination{New: true, NewStar: star}
}

func (d Destination) String() string {
	if d.New {
		return fmt.Sprintf("new(%s)", d.NewStar)
	}
	return d.System.String()
}

// Action is a flat tagged union over every action kind. Fields unused by a kind are zero, so
// actions are comparable and usable as map keys.
//
//	Move        System=src Dest Piece=ship type
//	Build       System Piece=new ship type
//	Trade       System Piece=old type Target=new type
//	Capture     System Piece=victim type
//	Sacrifice   System Piece=ship type
//	Catastrophe System Color
//	Establish   Piece=first ship type
//	Pass
type Action struct {
	Kind   ActionKind
	System SystemID
	Dest   Destination
	Piece  PieceType
	Target PieceType
	Color  Color
}

func Move(src SystemID, dest Destination, ship PieceType) Action {
	return Action{Kind: MoveAction, System: src, Dest: dest, Piece: ship}
}

func Build(at SystemID, ship PieceType) Action {
	return Action{Kind: BuildAction, System: at, Piece: ship}
}

func Trade(at SystemID, from, to PieceType) Action {
	return Action{Kind: TradeAction, System: at, Piece: from, Target: to}
}

func Capture(at SystemID, victim PieceType) Action {
	return Action{Kind: CaptureAction, System: at, Piece: victim}
}

func Sacrifice(at SystemID, ship PieceType) Action {
	return Action{Kind: SacrificeAction, System: at, Piece: ship}
}

func Catastrophe(at SystemID, c Color) Action {
	return Action{Kind: CatastropheAction, System: at, Color: c}
}

func Establish(ship PieceType) Action {
	return Action{Kind: EstablishAction, Piece: ship}
}

func Pass() Action {
	return Action{Kind: PassAction}
}

func (a Action) String() string {
	switch a.Kind {
	case MoveAction:
		return fmt.Sprintf("move %s from %s to %s", a.Piece, a.System, a.Dest)
	case BuildAction:
		return fmt.Sprintf("build %s at %s", a.Piece, a.System)
	case TradeAction:
		return fmt.Sprintf("trade %s for %s at %s", a.Piece, a.Target, a.System)
	case CaptureAction:
		return fmt.Sprintf("capture %s at %s", a.Piece, a.System)
	case SacrificeAction:
		return fmt.Sprintf("sacrifice %s at %s", a.Piece, a.System)
	case CatastropheAction:
		return fmt.Sprintf("catastrophe %s at %s", a.Color, a.System)
	case EstablishAction:
		return fmt.Sprintf("establish %s", a.Piece)
	default:
		return a.Kind.String()
	}
}
