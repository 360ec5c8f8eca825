// Command life-text runs a simulation in the terminal, printing one text frame
// per generation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golife/pkg/core"
	_ "golife/pkg/sims/life"
)

type cellList [][2]uint32

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c[0], c[1])
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(value string) error {
	row, col, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("expected row,col, got %q", value)
	}
	r, err := strconv.ParseUint(strings.TrimSpace(row), 10, 32)
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	c, err := strconv.ParseUint(strings.TrimSpace(col), 10, 32)
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	*l = append(*l, [2]uint32{uint32(r), uint32(c)})
	return nil
}

type options struct {
	sim     string
	simOpts map[string]string
	gens    int
	tps     int
	clear   bool
	gliders cellList
	toggles cellList
}

func main() {
	var opts options
	width := flag.Uint("w", 32, "grid width in cells")
	height := flag.Uint("h", 16, "grid height in cells")
	seed := flag.Int64("seed", 0, "seed for the initial fill (0 uses the clock)")
	flag.StringVar(&opts.sim, "sim", "life", "simulation to run")
	flag.IntVar(&opts.gens, "gens", 100, "generations to run")
	flag.IntVar(&opts.tps, "tps", 10, "generations per second (0 runs unpaced)")
	flag.BoolVar(&opts.clear, "empty", false, "start from an empty grid instead of a random fill")
	flag.Var(&opts.gliders, "glider", "stamp a glider centred on row,col (repeatable)")
	flag.Var(&opts.toggles, "toggle", "toggle the cell at row,col (repeatable)")
	flag.Parse()

	opts.simOpts = map[string]string{
		"w":    strconv.FormatUint(uint64(*width), 10),
		"h":    strconv.FormatUint(uint64(*height), 10),
		"seed": strconv.FormatInt(*seed, 10),
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := run(opts, out); err != nil {
		out.Flush()
		log.Fatal(err)
	}
}

func run(opts options, out io.Writer) error {
	sim, err := core.Lookup(opts.sim, opts.simOpts)
	if err != nil {
		return err
	}
	text, ok := sim.(core.TextRenderer)
	if !ok {
		return fmt.Errorf("sim %q has no text rendering", sim.Name())
	}

	if opts.clear {
		if c, ok := sim.(core.Clearer); ok {
			c.Clear()
		}
	}
	if len(opts.gliders) > 0 {
		stamper, ok := sim.(core.PatternStamper)
		if !ok {
			return fmt.Errorf("sim %q cannot place gliders", sim.Name())
		}
		for _, c := range opts.gliders {
			stamper.SetGlider(c[0], c[1])
		}
	}
	if len(opts.toggles) > 0 {
		toggler, ok := sim.(core.CellToggler)
		if !ok {
			return fmt.Errorf("sim %q cannot toggle cells", sim.Name())
		}
		for _, c := range opts.toggles {
			if err := toggler.ToggleCell(c[0], c[1]); err != nil {
				return err
			}
		}
	}

	tick := core.NewStopwatch("tick")
	var pace *core.FixedStep
	if opts.tps > 0 {
		pace = core.NewFixedStep(opts.tps)
	}

	if err := writeFrame(out, 0, sim, text); err != nil {
		return err
	}
	for gen := 1; gen <= opts.gens; gen++ {
		if pace != nil {
			for !pace.ShouldStep() {
				time.Sleep(pace.Interval() / 8)
			}
		}
		tick.Time(sim.Tick)
		if err := writeFrame(out, gen, sim, text); err != nil {
			return err
		}
	}
	if tick.Count() > 0 {
		log.Print(tick)
	}
	return nil
}

func writeFrame(out io.Writer, gen int, sim core.Sim, text core.TextRenderer) error {
	alive := 0
	for _, c := range sim.Cells() {
		alive += int(c)
	}
	if _, err := fmt.Fprintf(out, "generation %d, %d alive\n%s\n", gen, alive, text.Render()); err != nil {
		return fmt.Errorf("write frame %d: %w", gen, err)
	}
	if f, ok := out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
