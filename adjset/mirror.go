package adjset

import "github.com/mtadjust/flatzone/pixelset"

// MirrorAndFinalize symmetrizes a slice of per-slot Sets that were
// populated one-directionally during an edge-emission pass (each edge
// (i, j) with i < j recorded only in sets[i], by representative pixel
// id) into a fully bidirectional adjacency relation, then finalizes
// every set (sort, dedup, rebuild Bloom).
//
// view supplies the slot-index <-> representative-pixel mapping needed
// to resolve each recorded neighbor pixel id back to the slot that owns
// it. Returns ErrLengthMismatch if len(sets) does not match the number
// of slots view describes.
func MirrorAndFinalize(sets []*Set, view pixelset.View) error {
	if len(sets) != len(view.IndexToPixel) {
		return ErrLengthMismatch
	}

	// Snapshot each set's one-directional contents before mirroring:
	// appending to sets[j] while iterating sets[i] is safe only because
	// we read each set's pre-mirror values exactly once, up front.
	original := make([][]int, len(sets))
	for i, s := range sets {
		if s == nil {
			continue
		}
		vals := s.Values()
		cp := make([]int, len(vals))
		copy(cp, vals)
		original[i] = cp
	}

	for i, neighbors := range original {
		for _, neighPixel := range neighbors {
			idxJ := view.PixelToIndex[neighPixel]
			sets[idxJ].AppendUnchecked(view.IndexToPixel[i])
		}
	}

	for _, s := range sets {
		if s == nil {
			continue
		}
		s.Finalize(true)
	}

	return nil
}
