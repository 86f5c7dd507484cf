package life

// Config holds parameters for the Life grid.
type Config struct {
	Rows        int
	Cols        int
	AliveWeight float64
}

// DefaultConfig returns the grid used when no window size is given.
func DefaultConfig() Config {
	return Config{Rows: 100, Cols: 100, AliveWeight: 0.2}
}

// FromPixels derives the grid dimensions from a window size and cell size.
// Partial cells at the right and bottom edges are dropped.
func FromPixels(width, height, cellSize int) Config {
	c := DefaultConfig()
	if cellSize <= 0 {
		return c
	}
	c.Rows = height / cellSize
	c.Cols = width / cellSize
	return c
}
