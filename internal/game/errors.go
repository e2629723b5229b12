package game

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIllegalMove          = errors.New("illegal move")
	ErrOutOfBounds          = errors.New("position out of bounds")
)
