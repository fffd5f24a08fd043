// Package graph builds and maintains the adjacency graph over an
// image's flat zones (maximal connected regions of constant gray
// level), in two interchangeable strategies sharing one capability
// interface, Graph.
//
// EagerGraph computes every zone's neighbor set exhaustively at
// construction time (one flood-fill pass plus one boundary-edge
// emission pass) and keeps it up to date incrementally as zones merge.
// Queries are O(degree); merges rewire neighbor sets directly.
//
// OnDemandGraph stores no neighbor sets at all, only each zone's list
// of border pixels (pixels with at least one neighbor of a different
// gray level). Adjacency queries walk the border list and resolve each
// neighbor pixel's zone through the union-find, lazily refiltering a
// bounded number of stale border pixels per query instead of ever
// rescanning a zone's interior. Merges are cheaper (no neighbor-set
// rewiring) but queries cost more per call; NumEdges and AverageDegree
// are not available in this strategy since materializing them would
// require exactly the bookkeeping on-demand avoids.
//
// Both strategies are built from a pixelimage.Image and an
// adjacency.Relation (or a radius, from which a Relation is derived),
// and share pixelset.Manager for pixel membership and a from-scratch
// iterative, path-compressing union-find over slot indices. Neither
// strategy is safe for concurrent use; callers sharing one instance
// across goroutines must synchronize externally.
package graph
