package adjacency

import "errors"

// Sentinel errors for adjacency operations.
var (
	// ErrInvalidDimensions indicates rows or cols is not strictly positive.
	ErrInvalidDimensions = errors.New("adjacency: rows and cols must be positive")

	// ErrInvalidRadius indicates a radius outside the supported (0, 2] range.
	ErrInvalidRadius = errors.New("adjacency: radius must be in (0, 2]")
)
