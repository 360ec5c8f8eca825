package life

import "strconv"

// Config controls the Life grid dimensions and initial seed.
type Config struct {
	Width  uint32
	Height uint32

	// Seed of the initial random fill. Zero picks a clock-derived seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Zero dimensions are kept so that construction rejects them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Height = uint32(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// NewFromConfig builds a grid from cfg.
func NewFromConfig(cfg Config) (*Grid, error) {
	if cfg.Seed == 0 {
		return New(cfg.Width, cfg.Height)
	}
	return NewSeeded(cfg.Width, cfg.Height, cfg.Seed)
}
