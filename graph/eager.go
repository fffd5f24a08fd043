package graph

import (
	"github.com/mtadjust/flatzone/adjacency"
	"github.com/mtadjust/flatzone/adjset"
	"github.com/mtadjust/flatzone/localfilter"
	"github.com/mtadjust/flatzone/pixelimage"
	"github.com/mtadjust/flatzone/pixelset"
)

// EagerGraph is the flat-zone adjacency strategy that computes every
// zone's neighbor set exhaustively at construction time and keeps it
// current incrementally as zones merge. Queries are O(degree); merges
// pay the cost of rewiring neighbor sets immediately instead of
// deferring it to the next query.
type EagerGraph struct {
	img *pixelimage.Image
	adj *adjacency.Relation

	pixels *pixelset.Manager
	view   pixelset.View
	uf     *unionFind

	adjLists []*adjset.Set
}

var _ Graph = (*EagerGraph)(nil)

// NewEagerGraph builds an EagerGraph over img using a freshly derived
// adjacency.Relation at the given radius.
func NewEagerGraph(img *pixelimage.Image, radius float64) (*EagerGraph, error) {
	if img == nil {
		return nil, ErrInvalidArgument
	}
	adj, err := adjacency.New(img.Rows, img.Cols, radius)
	if err != nil {
		return nil, err
	}

	return NewEagerGraphWithAdjacency(img, adj)
}

// NewEagerGraphWithAdjacency builds an EagerGraph over img using a
// caller-supplied adjacency.Relation, which must describe the same
// grid shape as img.
func NewEagerGraphWithAdjacency(img *pixelimage.Image, adj *adjacency.Relation) (*EagerGraph, error) {
	if err := validateImageAndAdjacency(img, adj); err != nil {
		return nil, err
	}

	pixels, err := pixelset.NewSingletons(img.Size())
	if err != nil {
		return nil, err
	}
	view := pixels.View()

	numFZ, isBoundary := floodFill(img, adj, view)
	if err := pixels.ShrinkToNumSets(numFZ); err != nil {
		return nil, err
	}
	view = pixels.View()

	g := &EagerGraph{
		img:    img,
		adj:    adj,
		pixels: pixels,
		view:   view,
		uf:     newUnionFind(numFZ),
	}
	g.adjLists = buildEagerAdjacency(img, adj, view, isBoundary, numFZ)

	return g, nil
}

// buildEagerAdjacency performs the one-shot boundary-edge emission
// pass: for every boundary pixel, each cross-level forward neighbor
// contributes exactly one edge (min(idxP,idxQ) -> max), deduplicated
// per base zone by a localfilter.Filter so a zone with a long, wiggly
// border does not emit the same neighbor edge once per shared pixel
// pair. adjset.MirrorAndFinalize then symmetrizes and finalizes every
// set in one pass.
func buildEagerAdjacency(img *pixelimage.Image, adj *adjacency.Relation, view pixelset.View, isBoundary []bool, numZones int) []*adjset.Set {
	lists := make([]*adjset.Set, numZones)
	for i := range lists {
		lists[i] = &adjset.Set{}
		lists[i].Reserve(guessAdjacencyDegree(view.SizeSets[i]))
	}

	var prefilter localfilter.Filter
	numPixels := img.Size()

	for p := 0; p < numPixels; p++ {
		if !isBoundary[p] {
			continue
		}

		idxP := view.PixelToIndex[p]
		if zone, ok := prefilter.CurrentZone(); !ok || zone != idxP {
			prefilter.Reset(idxP)
		}

		for _, q := range adj.NeighborsForward(p) {
			if img.At(q) == img.At(p) {
				continue
			}
			idxQ := view.PixelToIndex[q]
			if prefilter.Contains(idxQ) {
				continue
			}
			prefilter.Insert(idxQ)

			if idxP < idxQ {
				lists[idxP].AppendUnchecked(view.IndexToPixel[idxQ])
			} else {
				lists[idxQ].AppendUnchecked(view.IndexToPixel[idxP])
			}
		}
	}

	_ = adjset.MirrorAndFinalize(lists, view)

	return lists
}

// Image returns the image this graph was built from.
func (g *EagerGraph) Image() *pixelimage.Image { return g.img }

// AdjacencyRelation returns the adjacency relation this graph was built
// with.
func (g *EagerGraph) AdjacencyRelation() *adjacency.Relation { return g.adj }

// NumZones returns the total number of slots ever allocated.
func (g *EagerGraph) NumZones() int { return g.pixels.NumSets() }

// NumActiveZones returns the number of currently live zones.
func (g *EagerGraph) NumActiveZones() int { return g.uf.numRoots() }

func (g *EagerGraph) slotOf(rep int) (int, error) {
	if err := validateRep(g.img.Size(), rep); err != nil {
		return 0, err
	}

	return g.view.PixelToIndex[rep], nil
}

// NumPixelsInZone returns the pixel count of rep's zone.
func (g *EagerGraph) NumPixelsInZone(rep int) (int, error) {
	idx, err := g.slotOf(rep)
	if err != nil {
		return 0, err
	}
	root := g.uf.find(idx)

	return g.pixels.NumPixelsInSet(root), nil
}

// FindRepresentative canonicalizes rep through the union-find.
func (g *EagerGraph) FindRepresentative(rep int) (int, error) {
	idx, err := g.slotOf(rep)
	if err != nil {
		return 0, err
	}
	root := g.uf.find(idx)

	return g.view.IndexToPixel[root], nil
}

// ForEachAdjacentZone calls emit once per neighbor of rep's zone.
func (g *EagerGraph) ForEachAdjacentZone(rep int, emit func(int)) error {
	idx, err := g.slotOf(rep)
	if err != nil {
		return err
	}
	root := g.uf.find(idx)

	for _, n := range g.adjLists[root].Values() {
		emit(n)
	}

	return nil
}

// ZoneRepresentatives returns a closure over every active zone's
// representative pixel.
func (g *EagerGraph) ZoneRepresentatives() func() (int, bool) {
	return g.pixels.IterActiveRepresentatives()
}

// PixelsOfZone returns a closure over every pixel of rep's zone.
func (g *EagerGraph) PixelsOfZone(rep int) (func() (int, bool), error) {
	if err := validateRep(g.img.Size(), rep); err != nil {
		return nil, err
	}

	return g.pixels.IterPixelsOfSet(rep), nil
}

// PixelsOfZones returns a closure over every pixel across all of reps'
// zones.
func (g *EagerGraph) PixelsOfZones(reps []int) (func() (int, bool), error) {
	for _, r := range reps {
		if err := validateRep(g.img.Size(), r); err != nil {
			return nil, err
		}
	}

	return g.pixels.IterPixelsOfSets(reps), nil
}

// AverageDegree returns the mean neighbor count across active zones.
func (g *EagerGraph) AverageDegree() float64 {
	active := g.uf.numRoots()
	if active == 0 {
		return 0
	}

	return float64(g.totalDegree()) / float64(active)
}

// NumEdges returns the total number of distinct adjacency edges.
func (g *EagerGraph) NumEdges() int {
	return g.totalDegree() / 2
}

func (g *EagerGraph) totalDegree() int {
	total := 0
	for _, s := range g.adjLists {
		total += s.Size()
	}

	return total
}

// mergeOne merges the zone at idxLoserRoot into the zone at
// idxWinnerRoot: every neighbor of the loser is rewired to point at the
// winner instead, the would-be winner<->loser self-loop is erased, the
// loser's adjacency set is discarded, and the union-find and pixel
// circular lists are updated to match. Both arguments must already be
// DSU roots.
func (g *EagerGraph) mergeOne(idxWinnerRoot, idxLoserRoot int) {
	if idxWinnerRoot == idxLoserRoot {
		return
	}

	winnerRep := g.view.IndexToPixel[idxWinnerRoot]
	loserRep := g.view.IndexToPixel[idxLoserRoot]

	loserSet := g.adjLists[idxLoserRoot]
	for _, n := range loserSet.Values() {
		if n == winnerRep {
			continue
		}
		idxN := g.uf.find(g.view.PixelToIndex[n])

		g.adjLists[idxWinnerRoot].Insert(n)
		g.adjLists[idxN].Insert(winnerRep)
		g.adjLists[idxN].Erase(loserRep)
	}
	g.adjLists[idxWinnerRoot].Erase(loserRep)

	var empty adjset.Set
	g.adjLists[idxLoserRoot].Swap(&empty)

	g.uf.union(idxWinnerRoot, idxLoserRoot)
	_ = g.pixels.MergeSetsByRep(winnerRep, loserRep)
}

// MergeZones merges repLoser's zone into repWinner's zone. Unlike
// OnDemandGraph.MergeZones, the caller's chosen winner always survives
// here: the eager strategy's tie-break convention is "smaller
// representative pixel wins" at the level of its higher-level merge
// helpers, but MergeZones itself — the direct, no-election entry point
// — honors whichever side the caller named winner.
func (g *EagerGraph) MergeZones(repWinner, repLoser int) (int, error) {
	idxW, err := g.slotOf(repWinner)
	if err != nil {
		return 0, err
	}
	idxL, err := g.slotOf(repLoser)
	if err != nil {
		return 0, err
	}

	rootW := g.uf.find(idxW)
	rootL := g.uf.find(idxL)
	if rootW == rootL {
		return g.view.IndexToPixel[rootW], nil
	}

	g.mergeOne(rootW, rootL)

	return g.view.IndexToPixel[rootW], nil
}

// MergeAdjacentCandidatesInPlace filters *candidates down to those
// actually adjacent to repBase, elects the smallest pixel among repBase
// and the survivors as winner, and merges every other survivor into it.
func (g *EagerGraph) MergeAdjacentCandidatesInPlace(repBase int, candidates *[]int) (int, error) {
	if candidates == nil {
		return 0, ErrInvalidArgument
	}

	idxBase, err := g.slotOf(repBase)
	if err != nil {
		return 0, err
	}
	rootBase := g.uf.find(idxBase)
	baseAdj := g.adjLists[rootBase]

	cands := *candidates
	winnerRep := repBase
	var losers []int
	for _, c := range cands {
		if baseAdj.Find(c) {
			losers = append(losers, c)
			if c < winnerRep {
				winnerRep = c
			}
		}
	}
	if repBase != winnerRep {
		losers = append(losers, repBase)
	}

	idxWinner, err := g.slotOf(winnerRep)
	if err != nil {
		return 0, err
	}

	for _, loserRep := range losers {
		if loserRep == winnerRep {
			continue
		}
		idxLoser, err := g.slotOf(loserRep)
		if err != nil {
			return 0, err
		}
		g.mergeOne(g.uf.find(idxWinner), g.uf.find(idxLoser))
	}

	*candidates = spliceMergedCandidates(cands, losers, winnerRep)

	return winnerRep, nil
}

// MergeBasesWithAdjacentCandidatesInPlace merges every zone in bases
// (assumed mutually connected already) around winnerHint — or the
// smallest of bases, if winnerHint is negative — then merges in
// whichever of *candidates are adjacent to the result.
func (g *EagerGraph) MergeBasesWithAdjacentCandidatesInPlace(bases []int, candidates *[]int, winnerHint int) (int, error) {
	if len(bases) == 0 {
		return 0, ErrInvalidArgument
	}
	if candidates == nil {
		return 0, ErrInvalidArgument
	}

	winnerRep := winnerHint
	if winnerRep < 0 {
		winnerRep = bases[0]
		for _, b := range bases[1:] {
			if b < winnerRep {
				winnerRep = b
			}
		}
	}
	idxWinner, err := g.slotOf(winnerRep)
	if err != nil {
		return 0, err
	}

	for _, b := range bases {
		if b == winnerRep {
			continue
		}
		idxB, err := g.slotOf(b)
		if err != nil {
			return 0, err
		}
		g.mergeOne(g.uf.find(idxWinner), g.uf.find(idxB))
	}

	return g.MergeAdjacentCandidatesInPlace(winnerRep, candidates)
}
