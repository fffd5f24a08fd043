package graph

import (
	"math"

	"github.com/mtadjust/flatzone/adjacency"
	"github.com/mtadjust/flatzone/fastqueue"
	"github.com/mtadjust/flatzone/pixelimage"
	"github.com/mtadjust/flatzone/pixelset"
)

// floodFill discovers every flat zone of img under adj in a single BFS
// pass, writing directly into view's backing arrays (assumed freshly
// allocated via pixelset.NewSingletons(img.Size()), so every array has
// at least img.Size() capacity before the caller shrinks it down to the
// returned zone count). It returns the number of zones discovered and,
// per pixel, whether that pixel has at least one neighbor of a
// different gray level — the common "boundary" signal both flat-zone
// graph strategies build their own adjacency bookkeeping from (eager's
// one-shot edge-emission scan, on-demand's border-pixel lists).
//
// Shared between both strategies because both perform the identical
// flood fill; only what they do with the resulting isBoundary signal
// differs.
func floodFill(img *pixelimage.Image, adj *adjacency.Relation, view pixelset.View) (numZones int, isBoundary []bool) {
	numPixels := img.Size()
	visited := make([]bool, numPixels)
	isBoundary = make([]bool, numPixels)

	var queue fastqueue.Queue[int]
	queue.Reserve(numPixels/4 + 1)

	for seed := 0; seed < numPixels; seed++ {
		if visited[seed] {
			continue
		}

		level := img.At(seed)
		idxFZ := numZones
		numZones++

		tail := seed
		size := 0
		queue.Push(seed)
		visited[seed] = true
		view.PixelToIndex[seed] = idxFZ
		view.IndexToPixel[idxFZ] = seed

		for !queue.Empty() {
			q := queue.Pop()
			size++
			hasDiff := false

			for _, nq := range adj.Neighbors(q) {
				switch {
				case !visited[nq] && img.At(nq) == level:
					visited[nq] = true
					queue.Push(nq)
					view.PixelToIndex[nq] = idxFZ
					view.PixelsNext[tail] = nq
					tail = nq
				case img.At(nq) != level:
					hasDiff = true
				}
			}

			if hasDiff {
				isBoundary[q] = true
			}
		}

		view.PixelsNext[tail] = seed
		view.SizeSets[idxFZ] = size
	}

	return numZones, isBoundary
}

// guessAdjacencyDegree estimates a flat zone's eventual neighbor count
// from its pixel area (degree ~ O(sqrt(area)), capped at 64), sized so
// the zone's adjset.Set rarely needs to regrow during edge emission.
func guessAdjacencyDegree(area int) int {
	g := 10 + int(2.2*math.Sqrt(float64(area)))
	if g > 64 {
		g = 64
	}

	return g
}
