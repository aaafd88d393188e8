package game

import "errors"

var (
	// ErrOutOfStock is returned when the bank holds no piece of a requested type.
	ErrOutOfStock = errors.New("out of stock")
	// ErrIllegalAction is returned by Apply for an action that is not currently legal.
	ErrIllegalAction = errors.New("illegal action")
)
