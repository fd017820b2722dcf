package carve

// Seam holds one column index per image row, ordered from the bottom row to
// the top row, the order in which LocateSeam discovers it. Use Column to look
// up the index for a top based row number instead of indexing the slice directly.
type Seam []int

// Column returns the seam's column in row y, where row 0 is the top of the image.
func (s Seam) Column(y int) int {
	return s[len(s)-1-y]
}

// TopDown returns a copy of the seam ordered from the top row to the bottom row.
func (s Seam) TopDown() []int {
	out := make([]int, len(s))
	for i, x := range s {
		out[len(s)-1-i] = x
	}
	return out
}

// Validate checks that the seam fits a grid of the given size and that
// consecutive rows are at most one column apart.
func (s Seam) Validate(width, height int) error {
	if err := s.fits(width, height); err != nil {
		return err
	}
	for i := 1; i < len(s); i++ {
		if d := s[i] - s[i-1]; d < -1 || d > 1 {
			return newError(KindShapeMismatch, "seam is not connected between entries %d and %d", i-1, i)
		}
	}
	return nil
}

// fits checks the seam length against the grid height and every index against its width.
func (s Seam) fits(width, height int) error {
	if len(s) != height {
		return newError(KindShapeMismatch, "seam has %d entries, grid has %d rows", len(s), height)
	}
	for _, x := range s {
		if x < 0 || x >= width {
			return newError(KindShapeMismatch, "seam column %d out of bounds [0, %d)", x, width)
		}
	}
	return nil
}

// RemoveSeam returns a new grid, one column narrower than g, with the seam's
// cell removed from every row. Cells left of the seam keep their column, cells
// right of it shift left by one. The source grid is left untouched.
func RemoveSeam[T any](g *Grid[T], s Seam) (*Grid[T], error) {
	if g.empty() {
		return nil, newError(KindEmptyInput, "cannot remove a seam from an empty grid")
	}
	if g.Width() == 1 {
		return nil, newError(KindOutOfRange, "cannot narrow a single column grid")
	}
	if err := s.fits(g.Width(), g.Height()); err != nil {
		return nil, err
	}

	dst, err := NewGrid[T](g.Width()-1, g.Height())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height(); y++ {
		src, out := g.Row(y), dst.Row(y)
		x := s.Column(y)
		copy(out[:x], src[:x])
		copy(out[x:], src[x+1:])
	}
	return dst, nil
}

// MarkSeam returns a copy of g with every seam cell set to v.
func MarkSeam[T any](g *Grid[T], s Seam, v T) (*Grid[T], error) {
	if g.empty() {
		return nil, newError(KindEmptyInput, "cannot mark a seam on an empty grid")
	}
	if err := s.fits(g.Width(), g.Height()); err != nil {
		return nil, err
	}
	dst := g.Clone()
	for y := 0; y < dst.Height(); y++ {
		dst.Set(s.Column(y), y, v)
	}
	return dst, nil
}
