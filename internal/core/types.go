package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// ChangeTracker is implemented by sims that can report which cells the last
// mutation touched, so renderers only repaint those.
type ChangeTracker interface {
	Changed() []int
}

// Stats exposes counters for status readouts.
type Stats interface {
	Generation() int
	Population() int
}
