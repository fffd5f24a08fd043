// Package adjset implements the per-zone adjacency set used by both
// flat-zone graph strategies: a hybrid unsorted-append / sorted
// container over representative pixel ids, gated by a small Bloom
// filter that lets Find skip a full scan on a definite miss.
//
// A Set starts unsorted (cheap O(1) appends during construction) and
// is sorted on demand by Finalize, which also deduplicates and rebuilds
// the Bloom filter. Find uses the Bloom filter first: a negative Bloom
// result is a guaranteed true negative (no false negatives), so Find
// only falls through to a linear or binary scan when the filter reports
// a possible hit.
//
// MirrorAndFinalize symmetrizes a slice of Sets built by a
// one-directional edge-emission pass (each edge recorded only from the
// lower-id zone's perspective) into a fully bidirectional adjacency
// relation, then finalizes every set.
package adjset
