package adjacency_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtadjust/flatzone/adjacency"
)

func TestNewInvalid(t *testing.T) {
	_, err := adjacency.New(0, 3, 1.0)
	assert.ErrorIs(t, err, adjacency.ErrInvalidDimensions)

	_, err = adjacency.New(3, 3, 0)
	assert.ErrorIs(t, err, adjacency.ErrInvalidRadius)

	_, err = adjacency.New(3, 3, 2.5)
	assert.ErrorIs(t, err, adjacency.ErrInvalidRadius)
}

func TestNeighbors4Connectivity(t *testing.T) {
	r, err := adjacency.New(3, 3, 1.0)
	require.NoError(t, err)

	// Center pixel (1,1) -> linear id 4 in a 3x3 grid.
	center := r.LinearIndex(1, 1)
	got := r.Neighbors(center)
	sort.Ints(got)
	want := []int{
		r.LinearIndex(0, 1),
		r.LinearIndex(1, 0),
		r.LinearIndex(1, 2),
		r.LinearIndex(2, 1),
	}
	sort.Ints(want)
	assert.Equal(t, want, got)
}

func TestNeighbors8Connectivity(t *testing.T) {
	r, err := adjacency.New(3, 3, 1.5)
	require.NoError(t, err)

	center := r.LinearIndex(1, 1)
	got := r.Neighbors(center)
	assert.Len(t, got, 8)
}

func TestNeighborsCornerIsClipped(t *testing.T) {
	r, err := adjacency.New(3, 3, 1.5)
	require.NoError(t, err)

	corner := r.LinearIndex(0, 0)
	got := r.Neighbors(corner)
	assert.Len(t, got, 3) // (0,1),(1,0),(1,1) only
}

func TestNeighborsForwardIsHalfOfNeighbors(t *testing.T) {
	r, err := adjacency.New(4, 4, 1.0)
	require.NoError(t, err)

	for p := 0; p < r.Rows*r.Cols; p++ {
		all := r.Neighbors(p)
		fwd := r.NeighborsForward(p)
		for _, q := range fwd {
			assert.Greater(t, q, p)
			assert.Contains(t, all, q)
		}
		// Every neighbor of p with a larger id must be in p's forward
		// half, so no undirected edge is missed.
		for _, q := range all {
			if q > p {
				assert.Contains(t, fwd, q)
			}
		}
	}
}
