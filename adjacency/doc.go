// Package adjacency defines the pixel-neighbor oracle shared by every
// flat-zone graph strategy.
//
// A Relation fixes a grid shape (rows, cols) and a connectivity radius
// and precomputes the neighbor offsets for that radius once, the same
// way a grid-as-graph adapter precomputes its offset table instead of
// branching per cell. Any radius in (0, 1.5) selects 4-connectivity
// (N, E, S, W); any radius in [1.5, 2.0] selects 8-connectivity, adding
// the four diagonals.
//
// Neighbors returns every in-bounds neighbor of a pixel. NeighborsForward
// returns only the half of those neighbors with a strictly larger linear
// pixel id — the canonical half a construction pass should walk so each
// undirected edge is visited exactly once.
package adjacency
