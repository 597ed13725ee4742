package core

import "fmt"

// Sentinel marks a cell that has not been resolved to a biome yet.
const Sentinel int32 = -1

// Grid stores a 2D grid of biome indices in row-major order.
type Grid struct {
	W, H int
	data []int32
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{W: w, H: h, data: make([]int32, w*h)}, nil
}

// FromRows flattens rectangular row data into a grid. rows[y][x] becomes the
// cell at (x, y).
func FromRows(rows [][]int32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidDimensions)
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedInput, y, len(row), w)
		}
	}
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.data[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the value at (x, y).
func (g *Grid) Get(x, y int) (int32, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	return g.data[g.Index(x, y)], nil
}

// At returns the value at (x, y) without bounds checks.
func (g *Grid) At(x, y int) int32 { return g.data[y*g.W+x] }

// Set writes v at (x, y).
func (g *Grid) Set(x, y int, v int32) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// Validate checks the shape invariant len(cells) == W*H with W, H >= 1.
func (g *Grid) Validate() error {
	if g == nil || g.W <= 0 || g.H <= 0 {
		w, h := 0, 0
		if g != nil {
			w, h = g.W, g.H
		}
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(g.data) != g.W*g.H {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidDimensions, len(g.data), g.W, g.H)
	}
	return nil
}

// Resolved reports whether no cell holds Sentinel.
func (g *Grid) Resolved() bool {
	for _, v := range g.data {
		if v == Sentinel {
			return false
		}
	}
	return true
}

// Rows copies the grid back into row form.
func (g *Grid) Rows() [][]int32 {
	rows := make([][]int32, g.H)
	for y := range rows {
		rows[y] = append([]int32(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]int32(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H || len(g.data) != len(o.data) {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int32) {
	for i := range g.data {
		g.data[i] = v
	}
}
