package adjset

import "errors"

// ErrLengthMismatch indicates MirrorAndFinalize was given a sets slice
// whose length does not match the pixel-set view's slot count.
var ErrLengthMismatch = errors.New("adjset: sets length does not match view slot count")
