package adjacency

// Relation is a precomputed neighbor oracle over a rows×cols pixel grid.
type Relation struct {
	Rows, Cols int
	Radius     float64

	offsets [][2]int // (drow, dcol) pairs, precomputed once
}

// New builds a Relation for a rows×cols grid at the given connectivity
// radius. radius in (0, 1.5) selects 4-connectivity; radius in
// [1.5, 2.0] selects 8-connectivity. Returns ErrInvalidDimensions if
// rows or cols is not strictly positive, or ErrInvalidRadius if radius
// is outside (0, 2].
func New(rows, cols int, radius float64) (*Relation, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if radius <= 0 || radius > 2.0 {
		return nil, ErrInvalidRadius
	}

	var offsets [][2]int
	if radius >= 1.5 {
		// 8-connectivity: orthogonal + diagonal neighbors.
		offsets = [][2]int{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, -1}, {1, 0}, {1, 1},
		}
	} else {
		// 4-connectivity: orthogonal neighbors only.
		offsets = [][2]int{
			{-1, 0}, {0, -1}, {0, 1}, {1, 0},
		}
	}

	return &Relation{Rows: rows, Cols: cols, Radius: radius, offsets: offsets}, nil
}

// InBounds reports whether (row, col) lies within the grid.
func (r *Relation) InBounds(row, col int) bool {
	return row >= 0 && row < r.Rows && col >= 0 && col < r.Cols
}

// LinearIndex converts (row, col) to a linear pixel id.
func (r *Relation) LinearIndex(row, col int) int {
	return row*r.Cols + col
}

// RowCol converts a linear pixel id back to (row, col).
func (r *Relation) RowCol(p int) (row, col int) {
	return p / r.Cols, p % r.Cols
}

// Neighbors returns every in-bounds neighbor of pixel p.
func (r *Relation) Neighbors(p int) []int {
	row, col := r.RowCol(p)
	out := make([]int, 0, len(r.offsets))
	for _, d := range r.offsets {
		nr, nc := row+d[0], col+d[1]
		if r.InBounds(nr, nc) {
			out = append(out, r.LinearIndex(nr, nc))
		}
	}

	return out
}

// NeighborsForward returns the in-bounds neighbors of p whose linear
// pixel id is strictly greater than p. Walking only this half during
// edge emission guarantees each undirected pixel-adjacency is visited
// exactly once.
func (r *Relation) NeighborsForward(p int) []int {
	row, col := r.RowCol(p)
	out := make([]int, 0, len(r.offsets))
	for _, d := range r.offsets {
		nr, nc := row+d[0], col+d[1]
		if !r.InBounds(nr, nc) {
			continue
		}
		q := r.LinearIndex(nr, nc)
		if q > p {
			out = append(out, q)
		}
	}

	return out
}
