package slicing

import "errors"

var (
	// ErrInvalidAxis indicates an axis index outside {0, 1, 2}.
	ErrInvalidAxis = errors.New("slicing: axis must be 0, 1, or 2")
	// ErrInvalidParameter indicates an out-of-range location or step value.
	ErrInvalidParameter = errors.New("slicing: parameter out of range")
	// ErrUnsupportedShape indicates single-plane slicing logic applied to a
	// plane sequence that does not hold exactly one plane.
	ErrUnsupportedShape = errors.New("slicing: operation requires exactly one plane")
)
