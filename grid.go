package carve

// Grid is a rectangular, row-major grid of cells. A valid grid is never empty.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a zero valued grid of the given size.
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, newError(KindEmptyInput, "grid size %dx%d is empty", width, height)
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// GridFromRows copies the rows into a new grid. Every row must have the same length.
func GridFromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, newError(KindEmptyInput, "cannot build a grid from empty rows")
	}
	g, err := NewGrid[T](len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, newError(KindShapeMismatch, "row %d has %d cells, expected %d", y, len(row), g.width)
		}
		copy(g.Row(y), row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// At returns the cell at column x, row y.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[y*g.width+x]
}

// Set overwrites the cell at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[y*g.width+x] = v
}

// Row returns row y as a slice sharing the grid's storage.
func (g *Grid[T]) Row(y int) []T {
	off := y * g.width
	return g.cells[off : off+g.width : off+g.width]
}

// Rows returns a deep copy of the grid as a slice of rows.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = append([]T(nil), g.Row(y)...)
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  append([]T(nil), g.cells...),
	}
}

func (g *Grid[T]) empty() bool {
	return g == nil || g.width < 1 || g.height < 1
}
