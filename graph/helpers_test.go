package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtadjust/flatzone/adjacency"
	"github.com/mtadjust/flatzone/pixelimage"
)

func collect(next func() (int, bool)) []int {
	var out []int
	for {
		v, ok := next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func imageFromRows(t *testing.T, rows [][]uint8) *pixelimage.Image {
	t.Helper()

	nr := len(rows)
	nc := len(rows[0])
	buf := make([]uint8, 0, nr*nc)
	for _, row := range rows {
		require.Len(t, row, nc)
		buf = append(buf, row...)
	}

	img, err := pixelimage.FromRaw(buf, nr, nc)
	require.NoError(t, err)

	return img
}

func newRelation(t *testing.T, rows, cols int, radius float64) *adjacency.Relation {
	t.Helper()

	adj, err := adjacency.New(rows, cols, radius)
	require.NoError(t, err)

	return adj
}

const fourConnected = 1.0
