package graph

import (
	"github.com/mtadjust/flatzone/adjacency"
	"github.com/mtadjust/flatzone/pixelimage"
)

// validateRep reports ErrInvalidArgument if rep does not name a pixel
// of an image with the given size.
func validateRep(numPixels, rep int) error {
	if rep < 0 || rep >= numPixels {
		return ErrInvalidArgument
	}

	return nil
}

// validateImageAndAdjacency reports ErrInvalidArgument if img or adj is
// nil, or ErrDimensionMismatch if adj's grid shape does not match img's.
func validateImageAndAdjacency(img *pixelimage.Image, adj *adjacency.Relation) error {
	if img == nil || adj == nil {
		return ErrInvalidArgument
	}
	if adj.Rows != img.Rows || adj.Cols != img.Cols {
		return ErrDimensionMismatch
	}

	return nil
}
