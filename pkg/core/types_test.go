package core

import (
	"errors"
	"slices"
	"testing"
)

type stubSim struct{ size Size }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return s.size }
func (s *stubSim) Reset()         {}
func (s *stubSim) Tick()          {}
func (s *stubSim) Cells() []uint8 { return nil }

func TestRegistryLookup(t *testing.T) {
	errBad := errors.New("bad config")
	Register("stub", func(cfg map[string]string) (Sim, error) {
		if cfg["fail"] != "" {
			return nil, errBad
		}
		return &stubSim{size: Size{W: 2, H: 3}}, nil
	})
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil", nil)
	t.Cleanup(func() { delete(sims, "stub") })

	if !slices.Contains(Names(), "stub") || slices.Contains(Names(), "nil") {
		t.Fatalf("unexpected registry names %v", Names())
	}

	sim, err := Lookup("stub", nil)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (Size{W: 2, H: 3}) {
		t.Fatalf("size %+v", sim.Size())
	}

	if _, err := Lookup("stub", map[string]string{"fail": "1"}); !errors.Is(err, errBad) {
		t.Fatalf("factory error not wrapped: %v", err)
	}
	if _, err := Lookup("missing", nil); err == nil {
		t.Fatal("expected an error for an unknown sim")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestParameterSnapshotLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "World",
		Params: []Parameter{IntParam("w", "Width", 64), FloatParam("d", "Density", 0.5)},
	}}}
	want := []string{"World", "  Width: 64", "  Density: 0.5"}
	if got := snap.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, expected %q", got, want)
	}
}
