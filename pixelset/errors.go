package pixelset

import "errors"

// Sentinel errors for pixelset operations.
var (
	// ErrInvalidArgument indicates a non-positive pixel count or an
	// out-of-range slot/shrink argument.
	ErrInvalidArgument = errors.New("pixelset: invalid argument")

	// ErrStaleHandle indicates a representative pixel no longer heads
	// its set (it lost a prior merge); callers should re-resolve via
	// the owning graph's FindRepresentative before retrying.
	ErrStaleHandle = errors.New("pixelset: representative is stale, re-resolve it first")
)
