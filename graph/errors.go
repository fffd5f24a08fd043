package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrInvalidArgument indicates a representative pixel id outside
	// [0, numPixels), a nil candidates pointer, an empty bases slice, or
	// a nil image/adjacency relation at construction.
	ErrInvalidArgument = errors.New("graph: invalid argument")

	// ErrDimensionMismatch indicates an adjacency.Relation whose rows
	// and cols do not match the image it is paired with.
	ErrDimensionMismatch = errors.New("graph: adjacency relation dimensions do not match image")

	// ErrStaleHandle indicates a representative pixel that no longer
	// heads its zone; callers should re-resolve it via
	// FindRepresentative before retrying.
	ErrStaleHandle = errors.New("graph: representative is stale, re-resolve it first")
)
