package graph

import (
	"github.com/mtadjust/flatzone/adjacency"
	"github.com/mtadjust/flatzone/genstamp"
	"github.com/mtadjust/flatzone/pixelimage"
	"github.com/mtadjust/flatzone/pixelset"
)

// OnDemandGraph is the flat-zone adjacency strategy that stores no
// neighbor sets at all, only a per-zone linked list of border pixels
// (pixels with at least one neighbor of a different gray level at the
// time they last joined the list). Adjacency queries walk the border
// list and resolve each neighbor pixel's zone through the union-find;
// merges are O(1) (DSU union + border-list tail splice) but leave the
// combined border list "dirty" until a bounded incremental refilter
// (driven by ForEachAdjacentZone) evicts pixels that turned out to no
// longer be border pixels once both sides merged.
type OnDemandGraph struct {
	img *pixelimage.Image
	adj *adjacency.Relation

	pixels *pixelset.Manager
	view   pixelset.View
	uf     *unionFind

	borderHead, borderTail, borderNext, borderCount []int
	borderCursor, borderCursorPrev                  []int
	borderDirty                                      []bool

	stamp *genstamp.Set
}

var _ Graph = (*OnDemandGraph)(nil)

// NewOnDemandGraph builds an OnDemandGraph over img using a freshly
// derived adjacency.Relation at the given radius.
func NewOnDemandGraph(img *pixelimage.Image, radius float64) (*OnDemandGraph, error) {
	if img == nil {
		return nil, ErrInvalidArgument
	}
	adj, err := adjacency.New(img.Rows, img.Cols, radius)
	if err != nil {
		return nil, err
	}

	return NewOnDemandGraphWithAdjacency(img, adj)
}

// NewOnDemandGraphWithAdjacency builds an OnDemandGraph over img using
// a caller-supplied adjacency.Relation, which must describe the same
// grid shape as img.
func NewOnDemandGraphWithAdjacency(img *pixelimage.Image, adj *adjacency.Relation) (*OnDemandGraph, error) {
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

	head, tail, next, count := buildBorderLists(numFZ, img.Size(), isBoundary, view)
	cursor := make([]int, numFZ)
	cursorPrev := make([]int, numFZ)
	for i := range cursor {
		cursor[i] = head[i]
		cursorPrev[i] = -1
	}

	stamp, err := genstamp.New(numFZ)
	if err != nil {
		return nil, err
	}

	return &OnDemandGraph{
		img:    img,
		adj:    adj,
		pixels: pixels,
		view:   view,
		uf:     newUnionFind(numFZ),

		borderHead:       head,
		borderTail:       tail,
		borderNext:       next,
		borderCount:      count,
		borderCursor:     cursor,
		borderCursorPrev: cursorPrev,
		borderDirty:      make([]bool, numFZ),

		stamp: stamp,
	}, nil
}

// buildBorderLists assembles each zone's initial border-pixel linked
// list from floodFill's isBoundary signal, in raster-scan order (the
// order is otherwise unconstrained; any permutation of the same pixel
// set is a valid border list).
func buildBorderLists(numZones, numPixels int, isBoundary []bool, view pixelset.View) (head, tail, next, count []int) {
	head = make([]int, numZones)
	tail = make([]int, numZones)
	next = make([]int, numPixels)
	count = make([]int, numZones)
	for i := range head {
		head[i] = -1
		tail[i] = -1
	}
	for i := range next {
		next[i] = -1
	}

	for p := 0; p < numPixels; p++ {
		if !isBoundary[p] {
			continue
		}
		idx := view.PixelToIndex[p]
		if head[idx] == -1 {
			head[idx] = p
		} else {
			next[tail[idx]] = p
		}
		tail[idx] = p
		count[idx]++
	}

	return head, tail, next, count
}

// Image returns the image this graph was built from.
func (g *OnDemandGraph) Image() *pixelimage.Image { return g.img }

// AdjacencyRelation returns the adjacency relation this graph was built
// with.
func (g *OnDemandGraph) AdjacencyRelation() *adjacency.Relation { return g.adj }

// NumZones returns the total number of slots ever allocated.
func (g *OnDemandGraph) NumZones() int { return g.pixels.NumSets() }

// NumActiveZones returns the number of currently live zones.
func (g *OnDemandGraph) NumActiveZones() int { return g.uf.numRoots() }

// AverageDegree is unavailable in the on-demand strategy: materializing
// it would require exactly the per-zone neighbor bookkeeping on-demand
// is built to avoid. ok is always false.
func (g *OnDemandGraph) AverageDegree() (avg float64, ok bool) { return 0, false }

// NumEdges is unavailable in the on-demand strategy, for the same
// reason as AverageDegree. ok is always false.
func (g *OnDemandGraph) NumEdges() (n int, ok bool) { return 0, false }

func (g *OnDemandGraph) slotOf(rep int) (int, error) {
	if err := validateRep(g.img.Size(), rep); err != nil {
		return 0, err
	}

	return g.view.PixelToIndex[rep], nil
}

// NumPixelsInZone returns the pixel count of rep's zone.
func (g *OnDemandGraph) NumPixelsInZone(rep int) (int, error) {
	idx, err := g.slotOf(rep)
	if err != nil {
		return 0, err
	}
	root := g.uf.find(idx)

	return g.pixels.NumPixelsInSet(root), nil
}

// FindRepresentative canonicalizes rep through the union-find.
func (g *OnDemandGraph) FindRepresentative(rep int) (int, error) {
	idx, err := g.slotOf(rep)
	if err != nil {
		return 0, err
	}
	root := g.uf.find(idx)

	return g.view.IndexToPixel[root], nil
}

// ZoneRepresentatives returns a closure over every active zone's
// representative pixel.
func (g *OnDemandGraph) ZoneRepresentatives() func() (int, bool) {
	return g.pixels.IterActiveRepresentatives()
}

// PixelsOfZone returns a closure over every pixel of rep's zone.
func (g *OnDemandGraph) PixelsOfZone(rep int) (func() (int, bool), error) {
	if err := validateRep(g.img.Size(), rep); err != nil {
		return nil, err
	}

	return g.pixels.IterPixelsOfSet(rep), nil
}

// PixelsOfZones returns a closure over every pixel across all of reps'
// zones.
func (g *OnDemandGraph) PixelsOfZones(reps []int) (func() (int, bool), error) {
	for _, r := range reps {
		if err := validateRep(g.img.Size(), r); err != nil {
			return nil, err
		}
	}

	return g.pixels.IterPixelsOfSets(reps), nil
}

// partialRefilterBudget sizes one incremental refilter step from the
// zone's current (possibly stale) border count: small zones get a
// small fixed budget (8 below 64 border pixels, 16 below 256), larger
// ones an eighth of their border size below 1024 and a quarter from
// there on, clamped to [8, 4096].
func partialRefilterBudget(count int) int {
	if count <= 0 {
		return 0
	}

	var budget int
	switch {
	case count < 64:
		budget = 8
	case count < 256:
		budget = 16
	case count < 1024:
		budget = count / 8
	default:
		budget = count / 4
	}
	if budget < 8 {
		budget = 8
	}
	if budget > 4096 {
		budget = 4096
	}

	return budget
}

// isBorderPixelForRoot reports whether p still has a neighbor outside
// root's zone, i.e. whether it is still genuinely a border pixel of
// root.
func (g *OnDemandGraph) isBorderPixelForRoot(p, root int) bool {
	for _, q := range g.adj.Neighbors(p) {
		idxQ := g.view.PixelToIndex[q]
		if g.uf.find(idxQ) != root {
			return true
		}
	}

	return false
}

// partialRefilterStep walks up to budget pixels from root's refilter
// cursor, unlinking any that are no longer border pixels of root. When
// the cursor reaches the end of the list it wraps to -1, signaling the
// caller that the whole list is now clean (borderDirty can be cleared).
func (g *OnDemandGraph) partialRefilterStep(root, budget int) {
	if budget <= 0 {
		return
	}

	current := g.borderCursor[root]
	prev := g.borderCursorPrev[root]
	if current == -1 {
		current = g.borderHead[root]
		prev = -1
	}

	processed := 0
	for current != -1 && processed < budget {
		next := g.borderNext[current]
		if !g.isBorderPixelForRoot(current, root) {
			if prev == -1 {
				g.borderHead[root] = next
			} else {
				g.borderNext[prev] = next
			}
			if g.borderTail[root] == current {
				g.borderTail[root] = prev
			}
			g.borderNext[current] = -1
			g.borderCount[root]--
		} else {
			prev = current
		}
		current = next
		processed++
	}

	g.borderCursor[root] = current
	g.borderCursorPrev[root] = prev
	if g.borderHead[root] == -1 {
		g.borderTail[root] = -1
		g.borderCursor[root] = -1
		g.borderCursorPrev[root] = -1
	} else if current == -1 {
		g.borderCursorPrev[root] = -1
	}
}

// refilterIfDirty runs one bounded partial-refilter step on root if its
// border list is marked dirty, clearing the dirty flag once the cursor
// has swept the whole list.
func (g *OnDemandGraph) refilterIfDirty(root int) {
	if !g.borderDirty[root] {
		return
	}
	g.partialRefilterStep(root, partialRefilterBudget(g.borderCount[root]))
	if g.borderCursor[root] == -1 {
		g.borderDirty[root] = false
	}
}

// forEachBorderNeighborRoot walks root's border pixels and calls visit
// once per distinct neighboring root (deduplicated via g.stamp, whose
// generation is advanced first).
func (g *OnDemandGraph) forEachBorderNeighborRoot(root int, visit func(neighborRoot int)) {
	g.refilterIfDirty(root)

	g.stamp.ResetAll()
	p := g.borderHead[root]
	for p != -1 {
		next := g.borderNext[p]
		for _, q := range g.adj.Neighbors(p) {
			idxQ := g.view.PixelToIndex[q]
			rootQ := g.uf.find(idxQ)
			if rootQ == root {
				continue
			}
			if !g.stamp.IsMarked(rootQ) {
				g.stamp.Mark(rootQ)
				visit(rootQ)
			}
		}
		p = next
	}
}

// ForEachAdjacentZone calls emit once per neighbor of rep's zone.
func (g *OnDemandGraph) ForEachAdjacentZone(rep int, emit func(int)) error {
	idx, err := g.slotOf(rep)
	if err != nil {
		return err
	}
	root := g.uf.find(idx)

	g.forEachBorderNeighborRoot(root, func(neighborRoot int) {
		emit(g.view.IndexToPixel[neighborRoot])
	})

	return nil
}

// AreAdjacentByPixels directly tests whether repA's and repB's zones
// are adjacent by scanning the smaller zone's pixels for any neighbor
// falling in the other zone. Unlike ForEachAdjacentZone it never
// touches the border lists, so it is unaffected by (and does not clean
// up) a dirty border.
func (g *OnDemandGraph) AreAdjacentByPixels(repA, repB int) (bool, error) {
	a, err := g.FindRepresentative(repA)
	if err != nil {
		return false, err
	}
	b, err := g.FindRepresentative(repB)
	if err != nil {
		return false, err
	}
	if a == b {
		return false, nil
	}

	rootA := g.uf.find(g.view.PixelToIndex[a])
	rootB := g.uf.find(g.view.PixelToIndex[b])

	smallRep, otherRoot := a, rootB
	if g.pixels.NumPixelsInSet(rootB) < g.pixels.NumPixelsInSet(rootA) {
		smallRep, otherRoot = b, rootA
	}

	next := g.pixels.IterPixelsOfSet(smallRep)
	for {
		p, ok := next()
		if !ok {
			return false, nil
		}
		for _, q := range g.adj.Neighbors(p) {
			idxQ := g.view.PixelToIndex[q]
			if g.uf.find(idxQ) == otherRoot {
				return true, nil
			}
		}
	}
}

// concatBorderLists splices loserRoot's border list onto the tail of
// winnerRoot's in O(1) and clears the loser's bookkeeping. The combined
// list is left exactly as the two originals were ordered, back to back;
// it is not deduplicated or refiltered here (that happens lazily on the
// next query via refilterIfDirty).
func (g *OnDemandGraph) concatBorderLists(winnerRoot, loserRoot int) {
	loserHead := g.borderHead[loserRoot]
	if loserHead != -1 {
		if g.borderHead[winnerRoot] == -1 {
			g.borderHead[winnerRoot] = loserHead
		} else {
			g.borderNext[g.borderTail[winnerRoot]] = loserHead
		}
		g.borderTail[winnerRoot] = g.borderTail[loserRoot]
		g.borderCount[winnerRoot] += g.borderCount[loserRoot]
	}

	g.borderHead[loserRoot] = -1
	g.borderTail[loserRoot] = -1
	g.borderCount[loserRoot] = 0
	g.borderCursor[loserRoot] = -1
	g.borderCursorPrev[loserRoot] = -1
	g.borderDirty[loserRoot] = false
}

// mergeRoots unions loserRoot into winnerRoot: DSU union, pixel
// circular-list splice, border-list concatenation, and marks the
// winner's border dirty (its cursor restarts from the head) since the
// concatenated list may now contain pixels that are no longer border
// pixels now that both zones share a root.
func (g *OnDemandGraph) mergeRoots(winnerRoot, loserRoot int) {
	winnerRep := g.view.IndexToPixel[winnerRoot]
	loserRep := g.view.IndexToPixel[loserRoot]

	g.uf.union(winnerRoot, loserRoot)
	_ = g.pixels.MergeSetsByRep(winnerRep, loserRep)

	g.concatBorderLists(winnerRoot, loserRoot)
	g.borderDirty[winnerRoot] = true
	g.borderCursor[winnerRoot] = g.borderHead[winnerRoot]
	g.borderCursorPrev[winnerRoot] = -1
}

// MergeZones merges repA's and repB's zones, with the LARGER zone
// surviving (ties favor repA's side) — a deliberate divergence from
// EagerGraph.MergeZones' caller-dictated winner: this strategy unions
// by zone size rather than by the caller's choice.
func (g *OnDemandGraph) MergeZones(repA, repB int) (int, error) {
	idxA, err := g.slotOf(repA)
	if err != nil {
		return 0, err
	}
	idxB, err := g.slotOf(repB)
	if err != nil {
		return 0, err
	}

	rootA := g.uf.find(idxA)
	rootB := g.uf.find(idxB)
	if rootA == rootB {
		return g.view.IndexToPixel[rootA], nil
	}

	winnerRoot, loserRoot := rootA, rootB
	if g.pixels.NumPixelsInSet(rootB) > g.pixels.NumPixelsInSet(rootA) {
		winnerRoot, loserRoot = rootB, rootA
	}

	g.mergeRoots(winnerRoot, loserRoot)

	return g.view.IndexToPixel[winnerRoot], nil
}

// MergeAdjacentCandidatesInPlace is the "naive" on-demand variant: it
// marks every root currently adjacent to repBase's zone (one pass over
// repBase's border, refiltering it first if dirty), then canonicalizes
// each of *candidates through FindRepresentative and keeps only those
// whose current root was marked. Each surviving candidate is merged in
// with MergeZones — which may flip which side actually survives a given
// pairwise merge, per this strategy's size-based tie-break — so the
// final winner is whichever pixel FindRepresentative resolves to after
// all of them, not necessarily the smallest pixel id. Every candidate
// is re-canonicalized on every pass, but adjacency is not re-checked
// after a chained merge within the same call.
func (g *OnDemandGraph) MergeAdjacentCandidatesInPlace(repBase int, candidates *[]int) (int, error) {
	if candidates == nil {
		return 0, ErrInvalidArgument
	}

	baseCanon, err := g.FindRepresentative(repBase)
	if err != nil {
		return 0, err
	}
	baseRoot := g.uf.find(g.view.PixelToIndex[baseCanon])

	adjacentRoots := make(map[int]struct{})
	g.forEachBorderNeighborRoot(baseRoot, func(neighborRoot int) {
		adjacentRoots[neighborRoot] = struct{}{}
	})

	cands := *candidates
	winnerRep := baseCanon
	var losers []int
	for _, r := range cands {
		c, err := g.FindRepresentative(r)
		if err != nil {
			return 0, err
		}
		if c == baseCanon {
			continue
		}
		rootC := g.uf.find(g.view.PixelToIndex[c])
		if _, adjacent := adjacentRoots[rootC]; !adjacent {
			continue
		}
		losers = append(losers, c)
		if c < winnerRep {
			winnerRep = c
		}
	}
	if winnerRep != baseCanon {
		losers = append(losers, baseCanon)
	}

	for _, loserRep := range losers {
		if loserRep == winnerRep {
			continue
		}
		if _, err := g.MergeZones(winnerRep, loserRep); err != nil {
			return 0, err
		}
	}

	wCanon, err := g.FindRepresentative(winnerRep)
	if err != nil {
		return 0, err
	}

	final, err := g.rewriteCandidatesCollapsedInto(cands, wCanon)
	if err != nil {
		return 0, err
	}
	*candidates = final

	return wCanon, nil
}

// rewriteCandidatesCollapsedInto drops every element of original whose
// current representative now resolves to wCanon, then appends wCanon
// unconditionally.
func (g *OnDemandGraph) rewriteCandidatesCollapsedInto(original []int, wCanon int) ([]int, error) {
	out := original[:0]
	for _, x := range original {
		c, err := g.FindRepresentative(x)
		if err != nil {
			return nil, err
		}
		if c == wCanon {
			continue
		}
		out = append(out, x)
	}

	return append(out, wCanon), nil
}

// MergeBasesWithAdjacentCandidatesInPlace merges every zone in bases
// (assumed mutually connected already) around winnerHint — or the
// smallest of bases, if winnerHint is negative — then merges in
// whichever of *candidates are adjacent to the result. Since MergeZones
// may flip the survivor on any pairwise merge, winnerRep is
// re-canonicalized after each one.
func (g *OnDemandGraph) MergeBasesWithAdjacentCandidatesInPlace(bases []int, candidates *[]int, winnerHint int) (int, error) {
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
	winnerRep, err := g.FindRepresentative(winnerRep)
	if err != nil {
		return 0, err
	}

	for _, b := range bases {
		c, err := g.FindRepresentative(b)
		if err != nil {
			return 0, err
		}
		if c == winnerRep {
			continue
		}
		if _, err := g.MergeZones(winnerRep, c); err != nil {
			return 0, err
		}
		winnerRep, err = g.FindRepresentative(winnerRep)
		if err != nil {
			return 0, err
		}
	}

	return g.MergeAdjacentCandidatesInPlace(winnerRep, candidates)
}
