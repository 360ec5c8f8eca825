package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a host needs to drive and display an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Tick()
	Cells() []uint8
}

// CellToggler is implemented by sims that can flip a single cell.
type CellToggler interface {
	ToggleCell(row, col uint32) error
}

// PatternStamper is implemented by sims that can place a glider around a cell.
type PatternStamper interface {
	SetGlider(centerRow, centerCol uint32)
}

// Reseeder restarts a sim's random stream before reseeding its cells.
type Reseeder interface {
	Reseed(seed int64)
}

// Clearer kills every cell.
type Clearer interface {
	Clear()
}

// TextRenderer produces a glyph-per-cell view of a sim.
type TextRenderer interface {
	Render() string
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named sim from cfg.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	sim, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sim %q: %w", name, err)
	}
	return sim, nil
}
