package genstamp

import "errors"

// ErrInvalidArgument indicates a non-positive size, or a slot index
// outside [0, n).
var ErrInvalidArgument = errors.New("genstamp: invalid argument")
