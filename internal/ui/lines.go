package ui

import (
	"fmt"

	"golife/pkg/core"
)

// Status is the host-side state the HUD reports next to the sim's own parameters.
type Status struct {
	Paused bool
	Frames *core.FrameStats
	Tick   *core.Stopwatch
}

// Lines builds the HUD text for sim, top to bottom.
func Lines(sim core.Sim, st Status) []string {
	title := "Controls"
	if sim != nil && sim.Name() != "" {
		title = sim.Name()
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{fmt.Sprintf("%s (%s)", title, state)}

	if st.Frames != nil {
		lines = append(lines, st.Frames.Lines()...)
	}
	if st.Tick != nil && st.Tick.Count() > 0 {
		lines = append(lines, fmt.Sprintf("%s %v (mean %v)", st.Tick.Name, st.Tick.Last(), st.Tick.Mean()))
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		lines = append(lines, provider.Parameters().Lines()...)
	}
	return lines
}
