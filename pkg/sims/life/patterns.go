package life

import (
	"sort"

	"github.com/pkg/errors"

	"life3d/pkg/core"
)

// PatternOptions controls where and how a pattern is placed.
type PatternOptions struct {
	// X and Y shift every pattern cell.
	X, Y int
	// Center places the pattern's bounding box in the middle of the field,
	// applied before the X/Y shift.
	Center bool
	// Density is the Alive probability used by the random pattern.
	Density float64
}

// Pattern seeds a field. Cells falling outside the field are clipped.
type Pattern struct {
	Name  string
	Descr string
	// Cells lists [x, y] coordinates to set Alive. Ignored when Fill is set.
	Cells [][2]int
	// Fill seeds procedurally instead of from Cells.
	Fill func(f *Field, rng *core.RNG, opts PatternOptions)
}

var patterns = map[string]Pattern{}

// RegisterPattern adds p to the registry under p.Name.
func RegisterPattern(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the registered pattern called name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seed resets f to Dead and applies the named pattern.
func Seed(f *Field, name string, rng *core.RNG, opts PatternOptions) error {
	p, ok := patterns[name]
	if !ok {
		return errors.Errorf("[Seed] unknown pattern %q", name)
	}
	f.Reset(Dead)
	if p.Fill != nil {
		p.Fill(f, rng, opts)
		return nil
	}
	ox, oy := opts.X, opts.Y
	if opts.Center {
		minX, minY, maxX, maxY := bounds(p.Cells)
		ox += f.Width()/2 - (maxX-minX+1)/2 - minX
		oy += f.Height()/2 - (maxY-minY+1)/2 - minY
	}
	for _, c := range p.Cells {
		f.Set(c[0]+ox, c[1]+oy, Alive)
	}
	return nil
}

func bounds(cells [][2]int) (minX, minY, maxX, maxY int) {
	for i, c := range cells {
		if i == 0 {
			minX, maxX, minY, maxY = c[0], c[0], c[1], c[1]
			continue
		}
		minX = min(minX, c[0])
		maxX = max(maxX, c[0])
		minY = min(minY, c[1])
		maxY = max(maxY, c[1])
	}
	return
}

// rect returns the cells of a w*h rectangle anchored at (x, y).
func rect(x, y, w, h int) [][2]int {
	cells := make([][2]int, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cells = append(cells, [2]int{x + dx, y + dy})
		}
	}
	return cells
}

func concat(parts ...[][2]int) [][2]int {
	var out [][2]int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func fillRandom(f *Field, rng *core.RNG, opts PatternOptions) {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	alive := rng.Chance
	if opts.Density == 0.5 {
		alive = func(float64) bool { return rng.Bool() }
	}
	f.Each(func(x, y int, _ State) {
		if alive(opts.Density) {
			f.Set(x, y, Alive)
		}
	})
}

func init() {
	RegisterPattern(Pattern{
		Name:  "blocks",
		Descr: "four 2x6 bars arranged in a pinwheel",
		Cells: concat(
			rect(6, 6, 2, 6),
			rect(13, 9, 2, 6),
			rect(6, 13, 6, 2),
			rect(9, 6, 6, 2),
		),
	})
	RegisterPattern(Pattern{
		Name:  "blinker",
		Descr: "period-2 horizontal bar of three cells",
		Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}},
	})
	RegisterPattern(Pattern{
		Name:  "glider",
		Descr: "the smallest spaceship",
		Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	})
	RegisterPattern(Pattern{
		Name:  "random",
		Descr: "every cell alive with the configured density",
		Fill:  fillRandom,
	})
	RegisterPattern(Pattern{
		Name:  "empty",
		Descr: "all cells dead",
		Fill:  func(*Field, *core.RNG, PatternOptions) {},
	})
}
