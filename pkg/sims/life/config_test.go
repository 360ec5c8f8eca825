package life

import (
	"errors"
	"testing"

	"golife/pkg/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "32", "h": "16", "seed": "-5"})
	if c.Width != 32 || c.Height != 16 || c.Seed != -5 {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"w": "wide", "h": "-1"})
	def := DefaultConfig()
	if c.Width != def.Width || c.Height != def.Height {
		t.Fatalf("unparseable values should keep defaults, got %+v", c)
	}

	if c := FromMap(nil); c != def {
		t.Fatalf("nil map should return defaults, got %+v", c)
	}
}

func TestRegisteredFactory(t *testing.T) {
	sim, err := core.Lookup("life", map[string]string{"w": "12", "h": "8", "seed": "3"})
	if err != nil {
		t.Fatal(err)
	}
	if size := sim.Size(); size.W != 12 || size.H != 8 {
		t.Fatalf("size %+v, expected 12x8", size)
	}
	grid, ok := sim.(*Grid)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if grid.Seed() != 3 {
		t.Fatalf("seed %d, expected 3", grid.Seed())
	}

	_, err = core.Lookup("life", map[string]string{"w": "0"})
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero width err = %v, expected ErrInvalidDimensions", err)
	}
}

func TestGridSatisfiesHostInterfaces(t *testing.T) {
	var (
		_ core.Sim               = (*Grid)(nil)
		_ core.CellToggler       = (*Grid)(nil)
		_ core.PatternStamper    = (*Grid)(nil)
		_ core.Reseeder          = (*Grid)(nil)
		_ core.Clearer           = (*Grid)(nil)
		_ core.TextRenderer      = (*Grid)(nil)
		_ core.ParameterProvider = (*Grid)(nil)
	)
}
