package ui

import (
	"fmt"

	"lifecanvas/internal/core"
)

// StatusLine formats the one-line readout drawn over the grid.
func StatusLine(sim core.Sim, paused bool) string {
	size := sim.Size()
	line := sim.Name()
	if stats, ok := sim.(core.Stats); ok {
		line = fmt.Sprintf("%s  gen %d  pop %d/%d", line, stats.Generation(), stats.Population(), size.W*size.H)
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
