package life

import (
	"lifecanvas/internal/core"
)

const (
	dead  uint8 = 0
	alive uint8 = 1
)

// Life implements Conway's Game of Life on a bounded grid. The outer ring of
// cells is never updated and acts as a fixed border.
type Life struct {
	grid   *core.ByteGrid
	nxt    []uint8
	weight float64
	rng    *core.RNG

	changed    []int
	generation int
}

// New returns an all-dead Life grid with the provided dimensions.
func New(rows, cols int) *Life {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead Life grid configured from cfg.
func NewWithConfig(cfg Config) *Life {
	g := core.NewByteGrid(cfg.Rows, cfg.Cols)
	return &Life{
		grid:    g,
		nxt:     make([]uint8, g.Len()),
		weight:  cfg.AliveWeight,
		rng:     core.NewRNG(0),
		changed: make([]int, 0, g.Len()),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.Cols, H: l.grid.Rows} }

// Rows returns the number of grid rows.
func (l *Life) Rows() int { return l.grid.Rows }

// Cols returns the number of grid columns.
func (l *Life) Cols() int { return l.grid.Cols }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Changed returns the indices flipped by the last Step, Randomize, Reset or Set.
func (l *Life) Changed() []int { return l.changed }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Population counts live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.grid.Cells() {
		n += int(c)
	}
	return n
}

// Alive reports the state of the cell at (row, col).
func (l *Life) Alive(row, col int) bool {
	return l.grid.Cells()[l.grid.Index(row, col)] == alive
}

// Set forces the state of a single cell, border included.
func (l *Life) Set(row, col int, state bool) {
	l.changed = l.changed[:0]
	v := dead
	if state {
		v = alive
	}
	l.assign(l.grid.Index(row, col), v)
}

// NeighborCount sums the Moore neighborhood of idx. There is no wraparound, so
// idx must be an interior cell.
func (l *Life) NeighborCount(idx int) int {
	cells := l.grid.Cells()
	row, col := l.grid.RowCol(idx)
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(cells[l.grid.Index(row+dr, col+dc)])
		}
	}
	return n
}

// Step advances every interior cell by one generation. All cells read the
// same generation; the border is left as is.
func (l *Life) Step() {
	cells := l.grid.Cells()
	copy(l.nxt, cells)
	for row := 1; row < l.grid.Rows-1; row++ {
		for col := 1; col < l.grid.Cols-1; col++ {
			idx := l.grid.Index(row, col)
			l.nxt[idx] = nextState(cells[idx], l.NeighborCount(idx))
		}
	}

	l.changed = l.changed[:0]
	for idx, v := range l.nxt {
		l.assign(idx, v)
	}
	l.generation++
}

func nextState(state uint8, neighbors int) uint8 {
	if neighbors == 3 || (state == alive && neighbors == 2) {
		return alive
	}
	return dead
}

// Randomize sets each interior cell alive with probability p.
func (l *Life) Randomize(p float64) {
	l.changed = l.changed[:0]
	l.randomize(p)
}

func (l *Life) randomize(p float64) {
	for row := 1; row < l.grid.Rows-1; row++ {
		for col := 1; col < l.grid.Cols-1; col++ {
			v := dead
			if l.rng.Chance(p) {
				v = alive
			}
			l.assign(l.grid.Index(row, col), v)
		}
	}
}

// Reset reseeds the RNG, kills the border and randomizes the interior with
// the configured alive weight. Changed covers both passes.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed)
	l.generation = 0
	l.changed = l.changed[:0]
	for row := 0; row < l.grid.Rows; row++ {
		for col := 0; col < l.grid.Cols; col++ {
			if !l.grid.Interior(row, col) {
				l.assign(l.grid.Index(row, col), dead)
			}
		}
	}
	l.randomize(l.weight)
}

func (l *Life) assign(idx int, v uint8) {
	cells := l.grid.Cells()
	if cells[idx] == v {
		return
	}
	cells[idx] = v
	l.changed = append(l.changed, idx)
}
