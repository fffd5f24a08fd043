package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtadjust/flatzone/graph"
)

func TestOnDemandScenarioS1(t *testing.T) {
	img := imageFromRows(t, [][]uint8{{5, 5}, {5, 5}})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	assert.Equal(t, 1, g.NumZones())
	assert.Equal(t, 1, g.NumActiveZones())

	n, err := g.NumPixelsInZone(0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	var neighbors []int
	require.NoError(t, g.ForEachAdjacentZone(0, func(r int) { neighbors = append(neighbors, r) }))
	assert.Empty(t, neighbors)
}

func TestOnDemandScenarioS2(t *testing.T) {
	img := imageFromRows(t, [][]uint8{{1, 2}, {2, 2}})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	assert.Equal(t, 2, g.NumZones())

	var adj0, adj1 []int
	require.NoError(t, g.ForEachAdjacentZone(0, func(r int) { adj0 = append(adj0, r) }))
	require.NoError(t, g.ForEachAdjacentZone(1, func(r int) { adj1 = append(adj1, r) }))
	assert.Equal(t, []int{1}, adj0)
	assert.Equal(t, []int{0}, adj1)
}

func TestOnDemandScenarioS4AndS5(t *testing.T) {
	img := imageFromRows(t, [][]uint8{
		{0, 0, 1},
		{0, 1, 1},
		{1, 1, 1},
	})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	n0, err := g.NumPixelsInZone(0)
	require.NoError(t, err)
	assert.Equal(t, 3, n0)
	n2, err := g.NumPixelsInZone(2)
	require.NoError(t, err)
	assert.Equal(t, 6, n2)

	winner, err := g.MergeZones(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumActiveZones())

	n, err := g.NumPixelsInZone(winner)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	var adjAfter []int
	require.NoError(t, g.ForEachAdjacentZone(winner, func(r int) { adjAfter = append(adjAfter, r) }))
	assert.Empty(t, adjAfter)

	rep2, err := g.FindRepresentative(2)
	require.NoError(t, err)
	assert.Equal(t, winner, rep2)
}

func TestOnDemandMergeZonesLargerZoneWins(t *testing.T) {
	// Zone 2 (6 pixels) is strictly larger than zone 0 (3 pixels); unlike
	// EagerGraph.MergeZones, the caller's nominal "winner" argument does
	// not dictate who survives here — size does.
	img := imageFromRows(t, [][]uint8{
		{0, 0, 1},
		{0, 1, 1},
		{1, 1, 1},
	})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	winner, err := g.MergeZones(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, winner, "larger zone (rep 2) must survive regardless of argument order")

	rep0, err := g.FindRepresentative(0)
	require.NoError(t, err)
	assert.Equal(t, 2, rep0)
}

func TestOnDemandScenarioS6(t *testing.T) {
	img := imageFromRows(t, [][]uint8{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 3},
	})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	rep1, err := g.FindRepresentative(0)
	require.NoError(t, err)
	rep2, err := g.FindRepresentative(3)
	require.NoError(t, err)
	rep3, err := g.FindRepresentative(6)
	require.NoError(t, err)

	var adj1, adj2, adj3 []int
	require.NoError(t, g.ForEachAdjacentZone(rep1, func(r int) { adj1 = append(adj1, r) }))
	require.NoError(t, g.ForEachAdjacentZone(rep2, func(r int) { adj2 = append(adj2, r) }))
	require.NoError(t, g.ForEachAdjacentZone(rep3, func(r int) { adj3 = append(adj3, r) }))

	assert.Equal(t, []int{rep2}, adj1)
	assert.ElementsMatch(t, []int{rep1, rep3}, adj2)
	assert.Equal(t, []int{rep2}, adj3)
}

func TestOnDemandAreAdjacentByPixels(t *testing.T) {
	img := imageFromRows(t, [][]uint8{{1, 2}, {2, 2}})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	adjacent, err := g.AreAdjacentByPixels(0, 1)
	require.NoError(t, err)
	assert.True(t, adjacent)

	self, err := g.AreAdjacentByPixels(0, 0)
	require.NoError(t, err)
	assert.False(t, self)
}

func TestOnDemandUnsupportedAggregates(t *testing.T) {
	img := imageFromRows(t, [][]uint8{{1, 2}})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	_, ok := g.AverageDegree()
	assert.False(t, ok)
	_, ok = g.NumEdges()
	assert.False(t, ok)
}

// TestOnDemandChainedMergeWithinOneCall exercises three stripe zones
// merging across two chained unions within a single
// MergeAdjacentCandidatesInPlace call: the base is the middle stripe and
// both outer stripes are candidates adjacent to it. The two outer
// stripes are merged with each other first (they are not adjacent to
// each other), then the base is merged in, and every pixel must end up
// in one zone whose representative both outer stripes resolve to.
func TestOnDemandChainedMergeWithinOneCall(t *testing.T) {
	img := imageFromRows(t, [][]uint8{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 3},
	})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	rep1, err := g.FindRepresentative(0)
	require.NoError(t, err)
	rep3, err := g.FindRepresentative(6)
	require.NoError(t, err)

	// rep3's zone is not adjacent to rep1's zone; both are adjacent to
	// the base, the middle stripe headed by pixel 3.
	candidates := []int{rep1, rep3}
	winner, err := g.MergeAdjacentCandidatesInPlace(3, &candidates)
	require.NoError(t, err)

	assert.Equal(t, 1, g.NumActiveZones())

	n, err := g.NumPixelsInZone(winner)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	finalRep1, err := g.FindRepresentative(0)
	require.NoError(t, err)
	finalRep3, err := g.FindRepresentative(6)
	require.NoError(t, err)
	assert.Equal(t, winner, finalRep1)
	assert.Equal(t, winner, finalRep3)
}

func TestOnDemandInvalidArgument(t *testing.T) {
	img := imageFromRows(t, [][]uint8{{1, 2}})
	g, err := graph.NewOnDemandGraph(img, fourConnected)
	require.NoError(t, err)

	_, err = g.FindRepresentative(-1)
	assert.ErrorIs(t, err, graph.ErrInvalidArgument)

	_, err = g.MergeAdjacentCandidatesInPlace(0, nil)
	assert.ErrorIs(t, err, graph.ErrInvalidArgument)

	_, err = g.MergeBasesWithAdjacentCandidatesInPlace(nil, nil, -1)
	assert.ErrorIs(t, err, graph.ErrInvalidArgument)
}

func TestNewOnDemandGraphRejectsNilImage(t *testing.T) {
	_, err := graph.NewOnDemandGraph(nil, fourConnected)
	assert.ErrorIs(t, err, graph.ErrInvalidArgument)
}
