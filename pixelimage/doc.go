// Package pixelimage provides a minimal row-major grayscale image buffer.
//
// An Image is a flat []uint8 of length rows*cols addressed by a single
// linear pixel id (p = row*cols + col). It supports two acquisition
// modes: owning (New, NewFilled, FromRaw — the Image is the sole owner
// of its backing slice from that point on) and borrowing (FromExternal —
// the Image wraps a caller-owned slice without adopting it; Go's
// garbage collector handles the rest, but callers should not mutate a
// borrowed buffer concurrently with reads through the Image).
//
// pixelimage carries no image-decoding, encoding, or file I/O of any
// kind; turning bytes on disk into a []uint8 is the caller's job.
package pixelimage
