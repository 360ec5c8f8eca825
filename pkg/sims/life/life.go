package life

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"

	"golife/pkg/core"
)

var (
	// ErrInvalidDimensions is returned when a grid is built with a zero width or height.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrIndexOutOfRange is returned by single-cell accessors given a row or column off the grid.
	ErrIndexOutOfRange = errors.New("life: index out of range")
)

// Grid is Conway's Game of Life (B3/S23) on a torus. Cells are stored row-major
// in two bit sets: cur holds the displayed generation and nxt receives the
// generation being computed. The two swap roles at the end of every Tick.
type Grid struct {
	w, h int
	cur  *bitset.BitSet
	nxt  *bitset.BitSet

	seed int64
	rng  *rand.Rand
	gen  uint64

	display []uint8
	dirty   bool
}

// New returns a randomly seeded grid using a clock-derived seed.
func New(width, height uint32) (*Grid, error) {
	return NewSeeded(width, height, core.ClockSeed())
}

// NewSeeded returns a grid whose initial cells are drawn from seed, each alive
// with probability 0.5.
func NewSeeded(width, height uint32, seed int64) (*Grid, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	total := uint(width) * uint(height)
	g := &Grid{
		w:       int(width),
		h:       int(height),
		cur:     bitset.New(total),
		nxt:     bitset.New(total),
		display: make([]uint8, total),
	}
	g.Reseed(seed)
	return g, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return uint32(g.w) }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return uint32(g.h) }

// Seed returns the seed of the current random stream.
func (g *Grid) Seed() int64 { return g.seed }

// Generation returns the number of ticks since the grid was last seeded or cleared.
func (g *Grid) Generation() uint64 { return g.gen }

// Population returns the number of live cells in the displayed generation.
func (g *Grid) Population() int { return int(g.cur.Count()) }

// Reseed restarts the random stream from seed and then resets the grid.
func (g *Grid) Reseed(seed int64) {
	g.seed = seed
	g.rng = core.NewRNG(seed).Source()
	g.Reset()
}

// Reset draws every cell again, alive with probability 0.5. Both buffers get
// the same value so a read before the first tick sees a consistent grid.
func (g *Grid) Reset() {
	for i := uint(0); i < g.cur.Len(); i++ {
		alive := g.rng.IntN(2) == 1
		g.cur.SetTo(i, alive)
		g.nxt.SetTo(i, alive)
	}
	g.gen = 0
	g.dirty = true
}

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	g.cur.ClearAll()
	g.nxt.ClearAll()
	g.gen = 0
	g.dirty = true
}

// Tick advances the grid by one generation. Neighbor counts read only the
// current buffer and results land only in the next buffer.
func (g *Grid) Tick() {
	w, h := g.w, g.h
	for row := 0; row < h; row++ {
		up := (row + h - 1) % h
		down := (row + 1) % h
		for col := 0; col < w; col++ {
			left := (col + w - 1) % w
			right := (col + 1) % w

			idx := row*w + col
			neighbors := 0
			for _, r := range [3]int{up, row, down} {
				for _, c := range [3]int{left, col, right} {
					// On a one-cell-high or -wide grid the wrap lands back
					// on the cell itself; it is never its own neighbor.
					if n := r*w + c; n != idx && g.cur.Test(uint(n)) {
						neighbors++
					}
				}
			}
			g.nxt.SetTo(uint(idx), nextState(g.cur.Test(uint(idx)), neighbors))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
	g.dirty = true
}

func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}

func (g *Grid) index(row, col uint32) (uint, error) {
	if int64(row) >= int64(g.h) || int64(col) >= int64(g.w) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrIndexOutOfRange, row, col, g.w, g.h)
	}
	return uint(row)*uint(g.w) + uint(col), nil
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col uint32) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}
	return g.cur.Test(idx), nil
}

// Set forces the cell at (row, col) alive or dead.
func (g *Grid) Set(row, col uint32, alive bool) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cur.SetTo(idx, alive)
	g.dirty = true
	return nil
}

// ToggleCell flips the cell at (row, col).
func (g *Grid) ToggleCell(row, col uint32) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cur.Flip(idx)
	g.dirty = true
	return nil
}

// SetGlider clears the 4x4 block whose top-left corner is (centerRow-2,
// centerCol-2) and stamps a glider that drifts down and to the right. Centers
// whose block would leave the grid are ignored.
func (g *Grid) SetGlider(centerRow, centerCol uint32) {
	if centerRow < 2 || centerCol < 2 {
		return
	}
	r, c := int(centerRow), int(centerCol)
	if r+1 >= g.h || c+1 >= g.w {
		return
	}
	for row := r - 2; row <= r+1; row++ {
		for col := c - 2; col <= c+1; col++ {
			g.cur.Clear(uint(row*g.w + col))
		}
	}
	for _, off := range gliderOffsets {
		g.cur.Set(uint((r+off[0])*g.w + c + off[1]))
	}
	g.dirty = true
}

// gliderOffsets are (row, col) offsets from the stamp center.
var gliderOffsets = [5][2]int{
	{-1, -1},
	{0, 0}, {0, 1},
	{1, -1}, {1, 0},
}

// Packed exposes the displayed generation as 64-bit words. Cell i (row-major)
// is bit i%64 of word i/64. The slice is owned by the grid and must not be
// written; it reflects later edits and is valid until the next Tick.
func (g *Grid) Packed() []uint64 { return g.cur.Bytes() }

// Cells exposes the displayed generation as one byte per cell (0 dead, 1
// alive). The slice is rebuilt after mutations and must not be written.
func (g *Grid) Cells() []uint8 {
	if g.dirty {
		for i := range g.display {
			g.display[i] = 0
			if g.cur.Test(uint(i)) {
				g.display[i] = 1
			}
		}
		g.dirty = false
	}
	return g.display
}

// Parameters reports the grid's dimensions and population for display.
func (g *Grid) Parameters() core.ParameterSnapshot {
	pop := g.Population()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(g.w)),
				core.IntParam("h", "Height", int64(g.h)),
				core.IntParam("seed", "Seed", g.seed),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.UintParam("generation", "Generation", g.gen),
				core.IntParam("alive", "Alive", int64(pop)),
				core.FloatParam("density", "Density", float64(pop)/float64(g.w*g.h)),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		g, err := NewFromConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
