package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive size
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned for a coordinate outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDensity is returned when a randomize density is outside [0, 1]
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
)
