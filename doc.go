// Package flatzone decomposes a grayscale image into flat zones —
// maximal connected regions of constant pixel value — and exposes them
// as a dynamic adjacency graph that supports O(1) amortized merges
// while preserving the identity of each zone's representative pixel.
//
// Subpackages:
//
//	pixelimage/  — owning/borrowing grayscale pixel buffers
//	adjacency/   — radius-parameterized pixel-neighborhood oracle
//	pixelset/    — union-find-friendly pixel membership, O(1) merges
//	genstamp/    — generation-stamped O(1) amortized marker clears
//	adjset/      — small adjacent-zone sets with a tiny Bloom prefilter
//	localfilter/ — per-source-zone dedup for edge emission
//	fastqueue/   — generic FIFO/LIFO helpers for flood-fill traversal
//	graph/       — EagerGraph and OnDemandGraph, the two adjacency
//	               strategies, behind a shared Graph interface
//
// The graph package's types are not safe for concurrent use; callers
// that share one across goroutines must supply their own
// synchronization.
package flatzone
