package game

import "fmt"

// Bank tracks the unplayed pieces. Each entry is a bit mask of the instance ids still in the bank.
// Bank is a value: copying a GameState copies its bank.
type Bank [NumPieceTypes]uint8

const fullMask = 1<<Copies - 1

// NewBank returns a bank holding all 36 pieces.
func NewBank() Bank {
	var b Bank
	for i := range b {
		b[i] = fullMask
	}
	return b
}

// Contains reports whether at least one piece of the type is unplayed.
func (b *Bank) Contains(t PieceType) bool {
	return b[t] != 0
}

// Count returns the number of unplayed pieces of the type.
func (b *Bank) Count(t PieceType) int {
	n := 0
	for id := 0; id < Copies; id++ {
		if b[t]&(1<<id) != 0 {
			n++
		}
	}
	return n
}

// Len returns the number of unplayed pieces.
func (b *Bank) Len() int {
	n := 0
	for t := range b {
		n += b.Count(PieceType(t))
	}
	return n
}

// Pop removes and returns the lowest-numbered instance of the type.
func (b *Bank) Pop(t PieceType) (Piece, error) {
	for id := uint8(0); id < Copies; id++ {
		if b[t]&(1<<id) != 0 {
			b[t] &^= 1 << id
			return Piece{Type: t, ID: id}, nil
		}
	}
	return Piece{}, fmt.Errorf("%w: %s", ErrOutOfStock, t)
}

// Return puts a piece back. Returning an instance that is already banked is an engine bug.
func (b *Bank) Return(p Piece) {
	bit := uint8(1) << p.ID
	if p.ID >= Copies || b[p.Type]&bit != 0 {
		panic(fmt.Sprintf("piece %s returned to the bank twice", p))
	}
	b[p.Type] |= bit
}

// Smallest returns the smallest stocked type of the color.
func (b *Bank) Smallest(c Color) (PieceType, bool) {
	for _, size := range Sizes {
		t := NewPieceType(size, c)
		if b.Contains(t) {
			return t, true
		}
	}
	return 0, false
}
