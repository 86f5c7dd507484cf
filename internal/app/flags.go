package app

import (
	"flag"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/sims/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	CellSize    int
	Interval    time.Duration
	AliveWeight float64
	Seed        int64
	Status      bool
}

const defaultCellSize = 6

// NewConfig returns a Config whose window exactly fits life.DefaultConfig.
func NewConfig() *Config {
	grid := life.DefaultConfig()
	return &Config{
		Width:       grid.Cols * defaultCellSize,
		Height:      grid.Rows * defaultCellSize,
		CellSize:    defaultCellSize,
		Interval:    core.DefaultInterval,
		AliveWeight: grid.AliveWeight,
		Seed:        42,
		Status:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.Float64Var(&c.AliveWeight, "alive", c.AliveWeight, "probability an interior cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid reset")
	fs.BoolVar(&c.Status, "status", c.Status, "draw the status line")
}

// Validate checks that the configuration describes a usable grid.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.AliveWeight < 0 || c.AliveWeight > 1 {
		return errors.Errorf("alive probability must be within [0,1], got %v", c.AliveWeight)
	}
	g := c.Grid()
	if g.Rows < 3 || g.Cols < 3 {
		return errors.Wrapf(errGridTooSmall, "%dx%d pixels at cell size %d gives %dx%d cells",
			c.Width, c.Height, c.CellSize, g.Rows, g.Cols)
	}
	return nil
}

var errGridTooSmall = errors.New("grid needs at least 3x3 cells")

// Grid returns the Life configuration implied by the window parameters.
func (c *Config) Grid() life.Config {
	g := life.FromPixels(c.Width, c.Height, c.CellSize)
	g.AliveWeight = c.AliveWeight
	return g
}
