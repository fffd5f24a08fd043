package adjset

import "sort"

// Set holds the adjacent representative pixel ids of one flat zone. The
// zero value is an empty, unsorted, ready-to-use Set.
type Set struct {
	v      []int
	sorted bool
	bloom  tinyBloom
}

// Reserve grows the Set's backing array to at least n elements of
// capacity without changing its logical contents.
func (s *Set) Reserve(n int) {
	if cap(s.v)-len(s.v) >= n {
		return
	}
	grown := make([]int, len(s.v), len(s.v)+n)
	copy(grown, s.v)
	s.v = grown
}

// Size returns the number of adjacent zones currently recorded.
func (s *Set) Size() int {
	return len(s.v)
}

// Empty reports whether the Set has no recorded adjacent zones.
func (s *Set) Empty() bool {
	return len(s.v) == 0
}

// IsSorted reports whether the Set is currently in sorted, deduplicated
// form.
func (s *Set) IsSorted() bool {
	return s.sorted
}

// MarkUnsorted forces the Set out of sorted state, e.g. after a caller
// has appended to it through AppendUnchecked.
func (s *Set) MarkUnsorted() {
	s.sorted = false
}

// RebuildBloom rebuilds the Bloom filter from the Set's current
// contents without sorting or deduplicating.
func (s *Set) RebuildBloom() {
	s.bloom.rebuild(s.v)
}

// Clear empties the Set and resets the Bloom filter.
func (s *Set) Clear() {
	s.v = s.v[:0]
	s.sorted = false
	s.bloom.clear()
}

// Values returns the Set's backing slice directly. Callers must treat
// it as read-only; mutating it bypasses the Bloom filter and sorted
// invariant.
func (s *Set) Values() []int {
	return s.v
}

// Find reports whether x is present, consulting the Bloom filter first
// to short-circuit a definite miss.
func (s *Set) Find(x int) bool {
	if !s.bloom.maybeHas(x, len(s.v)) {
		return false
	}
	if s.sorted {
		i := sort.SearchInts(s.v, x)

		return i < len(s.v) && s.v[i] == x
	}
	for _, y := range s.v {
		if y == x {
			return true
		}
	}

	return false
}

// Insert adds x if not already present, keeping sorted order if the Set
// is currently sorted. Returns true if x was newly inserted.
func (s *Set) Insert(x int) bool {
	if s.sorted {
		i := sort.SearchInts(s.v, x)
		if i < len(s.v) && s.v[i] == x {
			return false
		}
		s.v = append(s.v, 0)
		copy(s.v[i+1:], s.v[i:])
		s.v[i] = x
		s.bloom.add(x)

		return true
	}

	for _, y := range s.v {
		if y == x {
			return false
		}
	}
	s.v = append(s.v, x)
	s.bloom.add(x)

	return true
}

// AppendUnchecked appends x without checking for duplicates and without
// updating the Bloom filter. It is only safe to use during a
// construction pass that will call Finalize before the Set is queried.
func (s *Set) AppendUnchecked(x int) {
	s.v = append(s.v, x)
}

// Finalize sorts and deduplicates the Set's contents and marks it
// sorted. If rebuildBloom is true the Bloom filter is rebuilt from the
// final contents; otherwise it is left untouched.
func (s *Set) Finalize(rebuildBloom bool) {
	sort.Ints(s.v)
	s.v = dedupSorted(s.v)
	s.sorted = true
	if rebuildBloom {
		s.bloom.rebuild(s.v)
	}
}

// FinalizeMaybeSorted sorts and deduplicates only if the Set currently
// holds at least sortThreshold elements; below that it leaves the order
// (and any duplicates) untouched, since a tiny adjacency set is cheaper
// to scan unsorted than to sort. The Bloom filter is rebuilt from
// whatever the final contents are when rebuildBloom is true.
func (s *Set) FinalizeMaybeSorted(sortThreshold int, rebuildBloom bool) {
	if len(s.v) >= sortThreshold {
		s.Finalize(rebuildBloom)
		return
	}
	if rebuildBloom {
		s.bloom.rebuild(s.v)
	}
}

// Erase removes x if present. Returns true if x was found and removed.
// The Bloom filter is never cleared on erase — it stays conservative,
// possibly reporting a maybe-present for a value no longer in the Set.
func (s *Set) Erase(x int) bool {
	if s.sorted {
		i := sort.SearchInts(s.v, x)
		if i >= len(s.v) || s.v[i] != x {
			return false
		}
		s.v = append(s.v[:i], s.v[i+1:]...)

		return true
	}

	for i, y := range s.v {
		if y == x {
			last := len(s.v) - 1
			s.v[i] = s.v[last]
			s.v = s.v[:last]

			return true
		}
	}

	return false
}

// Swap exchanges s's contents with other's.
func (s *Set) Swap(other *Set) {
	s.v, other.v = other.v, s.v
	s.sorted, other.sorted = other.sorted, s.sorted
	s.bloom, other.bloom = other.bloom, s.bloom
}

func dedupSorted(v []int) []int {
	if len(v) == 0 {
		return v
	}
	out := v[:1]
	for _, x := range v[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
