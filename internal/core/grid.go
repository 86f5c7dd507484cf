package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// RowCol is the inverse of Index.
func (g *ByteGrid) RowCol(idx int) (int, int) { return idx / g.Cols, idx % g.Cols }

// Interior reports whether (row, col) lies inside the outer ring.
func (g *ByteGrid) Interior(row, col int) bool {
	return row > 0 && row < g.Rows-1 && col > 0 && col < g.Cols-1
}
