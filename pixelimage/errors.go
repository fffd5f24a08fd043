package pixelimage

import "errors"

// Sentinel errors for pixelimage operations.
var (
	// ErrInvalidDimensions indicates rows or cols is not strictly positive.
	ErrInvalidDimensions = errors.New("pixelimage: rows and cols must be positive")

	// ErrBufferSizeMismatch indicates a supplied buffer's length does not
	// equal rows*cols.
	ErrBufferSizeMismatch = errors.New("pixelimage: buffer length does not match rows*cols")

	// ErrPixelOutOfRange indicates a pixel id outside [0, Size()).
	ErrPixelOutOfRange = errors.New("pixelimage: pixel id out of range")
)
