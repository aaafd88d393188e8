package game

import "fmt"

// Size of a piece. The zero value is not a valid size.
type Size uint8

const (
	Small Size = iota + 1
	Medium
	Large
)

// Sizes lists every size from smallest to largest.
var Sizes = [...]Size{Small, Medium, Large}

// Rank is the number of actions granted when a piece of this size is sacrificed.
func (s Size) Rank() int {
	return int(s)
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("size(%d)", uint8(s))
	}
}

// Color of a piece. Each color unlocks one kind of action.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

// Colors lists every color.
var Colors = [...]Color{Red, Green, Blue, Yellow}

const NumColors = len(Colors)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Kind returns the action kind unlocked by the color.
func (c Color) Kind() ActionKind {
	switch c {
	case Red:
		return CaptureAction
	case Green:
		return BuildAction
	case Blue:
		return TradeAction
	default:
		return MoveAction
	}
}

// PieceType is one of the 12 (size, color) combinations, encoded as color*3 + size-1.
type PieceType uint8

const (
	NumPieceTypes = 12
	// Copies is the number of physical pieces of each type.
	Copies    = 3
	NumPieces = NumPieceTypes * Copies
)

// NewPieceType returns the piece type of the given size and color.
func NewPieceType(size Size, color Color) PieceType {
	return PieceType(uint8(color)*3 + uint8(size) - 1)
}

var (
	SmallRed     = NewPieceType(Small, Red)
	MediumRed    = NewPieceType(Medium, Red)
	LargeRed     = NewPieceType(Large, Red)
	SmallGreen   = NewPieceType(Small, Green)
	MediumGreen  = NewPieceType(Medium, Green)
	LargeGreen   = NewPieceType(Large, Green)
	SmallBlue    = NewPieceType(Small, Blue)
	MediumBlue   = NewPieceType(Medium, Blue)
	LargeBlue    = NewPieceType(Large, Blue)
	SmallYellow  = NewPieceType(Small, Yellow)
	MediumYellow = NewPieceType(Medium, Yellow)
	LargeYellow  = NewPieceType(Large, Yellow)
)

// PieceTypes returns all piece types, ordered by color then size.
func PieceTypes() []PieceType {
	types := make([]PieceType, NumPieceTypes)
	for i := range types {
		types[i] = PieceType(i)
	}
	return types
}

func (t PieceType) Size() Size {
	return Size(uint8(t)%3 + 1)
}

func (t PieceType) Color() Color {
	return Color(uint8(t) / 3)
}

func (t PieceType) String() string {
	return t.Size().String() + " " + t.Color().String()
}

// Piece is one physical instance of a piece type.
type Piece struct {
	Type PieceType
	ID   uint8 // 0, 1 or 2
}

func (p Piece) String() string {
	return fmt.Sprintf("%s#%d", p.Type, p.ID)
}

// SizeSet is a bit set of sizes.
type SizeSet uint8

func (s SizeSet) Has(size Size) bool {
	return s&(1<<size) != 0
}

func (s SizeSet) With(size Size) SizeSet {
	return s | 1<<size
}

func (s SizeSet) Empty() bool {
	return s == 0
}

// Disjoint reports whether the two sets share no size.
func (s SizeSet) Disjoint(other SizeSet) bool {
	return s&other == 0
}

// Largest returns the largest size in the set, or 0 when empty.
func (s SizeSet) Largest() Size {
	for i := len(Sizes) - 1; i >= 0; i-- {
		if s.Has(Sizes[i]) {
			return Sizes[i]
		}
	}
	return 0
}

// ColorSet is a bit set of colors.
type ColorSet uint8

func (c ColorSet) Has(color Color) bool {
	return c&(1<<color) != 0
}

func (c ColorSet) With(color Color) ColorSet {
	return c | 1<<color
}
