package graph

// Graph is the capability set shared by both flat-zone adjacency
// strategies (EagerGraph, OnDemandGraph), so that code built against a
// flat-zone structure is oblivious to which strategy backs it.
//
// candidates is mutated in place: on return it holds exactly the
// surviving winner representative plus whatever candidates were not
// merged into it. Passing candidates by pointer is what makes that
// in-place contract possible in Go, where a plain []int's length
// cannot be grown by a callee the way a C++ vector reference can.
type Graph interface {
	// NumZones returns the total number of slots ever allocated (never
	// decreases; unaffected by merges).
	NumZones() int

	// NumActiveZones returns the number of currently live zones
	// (decreases by one on every successful merge).
	NumActiveZones() int

	// NumPixelsInZone returns the pixel count of the zone headed by
	// rep, after canonicalizing rep through the union-find.
	NumPixelsInZone(rep int) (int, error)

	// FindRepresentative canonicalizes rep to its zone's current
	// representative pixel, following any merges that have happened
	// since rep was first obtained.
	FindRepresentative(rep int) (int, error)

	// ForEachAdjacentZone calls emit once per zone adjacent to rep's
	// zone, passing each neighbor's representative pixel.
	ForEachAdjacentZone(rep int, emit func(neighborRep int)) error

	// ZoneRepresentatives returns a closure yielding every currently
	// active zone's representative pixel, one per call, followed by
	// (0, false).
	ZoneRepresentatives() func() (int, bool)

	// PixelsOfZone returns a closure yielding every pixel of rep's
	// zone, one per call, followed by (0, false).
	PixelsOfZone(rep int) (func() (int, bool), error)

	// PixelsOfZones returns a closure yielding every pixel across all
	// of reps' zones, in order, followed by (0, false).
	PixelsOfZones(reps []int) (func() (int, bool), error)

	// MergeZones merges the zones headed by repWinner and repLoser and
	// returns the surviving representative. Strategies differ on which
	// side actually survives (see EagerGraph.MergeZones and
	// OnDemandGraph.MergeZones); the returned value is always whichever
	// one did.
	MergeZones(repWinner, repLoser int) (int, error)

	// MergeAdjacentCandidatesInPlace merges repBase with whichever of
	// *candidates are actually adjacent to it, electing the smallest
	// representative pixel among repBase and the surviving candidates
	// as nominal winner. Returns the final surviving representative.
	MergeAdjacentCandidatesInPlace(repBase int, candidates *[]int) (int, error)

	// MergeBasesWithAdjacentCandidatesInPlace merges every zone in
	// bases (assumed already mutually connected, so every pairwise
	// merge among them is unconditional) around winnerHint (or the
	// smallest of bases if winnerHint is negative), then merges in
	// whichever of *candidates are adjacent to the result.
	MergeBasesWithAdjacentCandidatesInPlace(bases []int, candidates *[]int, winnerHint int) (int, error)
}
