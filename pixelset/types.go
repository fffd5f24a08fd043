package pixelset

// Manager owns the four parallel arrays backing every flat zone's
// pixel membership: which slot a pixel currently belongs to, which
// pixel represents a slot, each slot's size, and the circular
// "next pixel in this zone" chain.
type Manager struct {
	pixelToIndex []int // pixel id -> owning slot index
	indexToPixel []int // slot index -> representative pixel id, or -1 if retired
	sizeSets     []int // slot index -> number of pixels currently in that slot
	pixelsNext   []int // pixel id -> next pixel in its zone's circular list

	activeSetsCount int
}

// View exposes the Manager's backing arrays by reference, for callers
// (the flood-fill construction pass in package graph) that must
// populate or splice them directly for performance. Mutating a View's
// slices mutates the owning Manager.
type View struct {
	PixelToIndex []int
	IndexToPixel []int
	SizeSets     []int
	PixelsNext   []int
}

// NewSingletons allocates a Manager with numPixels pixels, each in its
// own singleton set: pixel p owns slot p, slot p's representative is p,
// slot p has size 1, and pixel p's circular-list successor is itself.
// Returns ErrInvalidArgument if numPixels is not strictly positive.
func NewSingletons(numPixels int) (*Manager, error) {
	if numPixels <= 0 {
		return nil, ErrInvalidArgument
	}

	m := &Manager{
		pixelToIndex:    make([]int, numPixels),
		indexToPixel:    make([]int, numPixels),
		sizeSets:        make([]int, numPixels),
		pixelsNext:      make([]int, numPixels),
		activeSetsCount: numPixels,
	}
	for p := 0; p < numPixels; p++ {
		m.pixelToIndex[p] = p
		m.indexToPixel[p] = p
		m.sizeSets[p] = 1
		m.pixelsNext[p] = p
	}

	return m, nil
}

// View returns a View over the Manager's backing arrays.
func (m *Manager) View() View {
	return View{
		PixelToIndex: m.pixelToIndex,
		IndexToPixel: m.indexToPixel,
		SizeSets:     m.sizeSets,
		PixelsNext:   m.pixelsNext,
	}
}

// NumSets returns the total number of slots currently allocated
// (including retired ones marked -1 in IndexToPixel). This count only
// ever shrinks via ShrinkToNumSets; it does not decrease on merges.
func (m *Manager) NumSets() int {
	return len(m.indexToPixel)
}

// NumActiveSets returns the number of slots that have not been retired
// by a merge.
func (m *Manager) NumActiveSets() int {
	return m.activeSetsCount
}

// IndexOfPixel returns the slot index currently owning pixel p.
func (m *Manager) IndexOfPixel(p int) int {
	return m.pixelToIndex[p]
}

// PixelOfIndex returns the representative pixel of slot idx, or -1 if
// idx has been retired.
func (m *Manager) PixelOfIndex(idx int) int {
	return m.indexToPixel[idx]
}

// NumPixelsInSet returns the number of pixels owned by the set whose
// slot index is idx.
func (m *Manager) NumPixelsInSet(idx int) int {
	return m.sizeSets[idx]
}

// ShrinkToNumSets compacts the Manager's slot arrays down to exactly n
// slots, assumed to be the true number of distinct zones discovered
// during a bulk construction pass (e.g. flood-fill) that populated the
// first n slots directly via View. Also resets the active-set count to
// n, since none of those n zones has been merged yet. Returns
// ErrInvalidArgument if n is not in [1, NumSets()].
func (m *Manager) ShrinkToNumSets(n int) error {
	if n <= 0 || n > len(m.indexToPixel) {
		return ErrInvalidArgument
	}

	m.indexToPixel = m.indexToPixel[:n]
	m.sizeSets = m.sizeSets[:n]
	m.activeSetsCount = n

	return nil
}

// MergeSetsByRep merges the set represented by repLoser into the set
// represented by repWinner in O(1): it splices the two sets' circular
// pixel lists together by swapping their representatives' "next"
// pointers, accumulates sizes, retires the loser's slot (marking
// IndexToPixel[loserSlot] = -1), and redirects repLoser's slot ownership
// to the winner's slot.
//
// Returns ErrStaleHandle if either repWinner or repLoser no longer heads
// its set (i.e. is not a current slot representative) — this can only
// happen if the caller passed a pixel that lost a previous merge without
// re-resolving it through the owning graph's FindRepresentative. A
// no-op (nil error) results if repWinner and repLoser are the same
// current representative.
func (m *Manager) MergeSetsByRep(repWinner, repLoser int) error {
	idxWinner := m.pixelToIndex[repWinner]
	idxLoser := m.pixelToIndex[repLoser]

	if m.indexToPixel[idxWinner] != repWinner {
		return ErrStaleHandle
	}
	if m.indexToPixel[idxLoser] != repLoser {
		return ErrStaleHandle
	}
	if idxWinner == idxLoser {
		return nil
	}

	m.sizeSets[idxWinner] += m.sizeSets[idxLoser]

	// Splice the two circular lists by swapping the representatives'
	// successors.
	nextWinner := m.pixelsNext[repWinner]
	nextLoser := m.pixelsNext[repLoser]
	m.pixelsNext[repWinner] = nextLoser
	m.pixelsNext[repLoser] = nextWinner

	m.sizeSets[idxLoser] = 0
	m.indexToPixel[idxLoser] = -1
	m.pixelToIndex[repLoser] = idxWinner

	if m.activeSetsCount > 0 {
		m.activeSetsCount--
	}

	return nil
}

// IterPixelsOfSet returns a closure that yields every pixel of the set
// represented by rep, one per call, followed by (0, false). It walks
// the set's circular pixelsNext chain starting at rep and stops once it
// wraps back around.
func (m *Manager) IterPixelsOfSet(rep int) func() (int, bool) {
	start := rep
	cur := rep
	started := false

	return func() (int, bool) {
		if started && cur == start {
			return 0, false
		}
		started = true
		p := cur
		cur = m.pixelsNext[cur]

		return p, true
	}
}

// IterPixelsOfSets returns a closure that yields every pixel across all
// of the sets represented by reps, in order, followed by (0, false).
func (m *Manager) IterPixelsOfSets(reps []int) func() (int, bool) {
	i := 0
	var cur func() (int, bool)

	return func() (int, bool) {
		for {
			if cur != nil {
				if p, ok := cur(); ok {
					return p, true
				}
				cur = nil
			}
			if i >= len(reps) {
				return 0, false
			}
			cur = m.IterPixelsOfSet(reps[i])
			i++
		}
	}
}

// IterActiveRepresentatives returns a closure that yields the
// representative pixel of every non-retired slot, in slot order,
// followed by (0, false).
func (m *Manager) IterActiveRepresentatives() func() (int, bool) {
	idx := 0
	n := len(m.indexToPixel)

	return func() (int, bool) {
		for idx < n {
			rep := m.indexToPixel[idx]
			idx++
			if rep != -1 {
				return rep, true
			}
		}

		return 0, false
	}
}
