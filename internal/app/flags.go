package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    uint
	Height   uint
	CellSize int
	TPS      int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 64, Height: 64, CellSize: 5, TPS: 30, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.UintVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.UintVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial fill (0 uses the clock)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
}

// SimOptions converts the configuration into the key/value form sim factories expect.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.FormatUint(uint64(c.Width), 10),
		"h":    strconv.FormatUint(uint64(c.Height), 10),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

// WindowTitle returns the window caption for a sim.
func WindowTitle(simName string) string {
	return "golife: " + simName
}
