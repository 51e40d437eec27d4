package life

import (
	"context"

	"golang.org/x/sync/errgroup"

	"life3d/pkg/core"
)

// neighborOffsets lists the Moore neighbourhood with +y as north:
// NW, N, NE, E, W, SE, S, SW.
var neighborOffsets = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {-1, 0},
	{1, -1}, {0, -1}, {-1, -1},
}

// Field is a fixed-size grid of cells advanced one generation at a time.
// Coordinates outside the grid read as Boundary rather than wrapping.
type Field struct {
	cur *core.Grid[State]
	nxt *core.Grid[State]

	generation int
}

// New returns a width*height field filled with def. Non-positive dimensions
// are clamped to 1, and a Boundary default is stored as Dead.
func New(width, height int, def State) *Field {
	if def != Alive {
		def = Dead
	}
	cur := core.NewGrid(width, height, def)
	return &Field{cur: cur, nxt: core.NewGrid(cur.W, cur.H, Dead)}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.cur.W }

// Height returns the number of rows.
func (f *Field) Height() int { return f.cur.H }

// Generation returns how many generations have been computed.
func (f *Field) Generation() int { return f.generation }

// Get returns the state at (x, y), or Boundary outside the field.
func (f *Field) Get(x, y int) State {
	s, ok := f.cur.At(x, y)
	if !ok {
		return Boundary
	}
	return s
}

// Set seeds the cell at (x, y). Writes outside the field and writes of
// Boundary are rejected.
func (f *Field) Set(x, y int, s State) bool {
	if s != Dead && s != Alive {
		return false
	}
	return f.cur.Set(x, y, s)
}

// Reset fills the field with s and rewinds the generation counter.
func (f *Field) Reset(s State) {
	if s != Alive {
		s = Dead
	}
	f.cur.Fill(s)
	f.generation = 0
}

// Neighbors returns the eight Moore neighbours of (x, y) in the order
// NW, N, NE, E, W, SE, S, SW.
func (f *Field) Neighbors(x, y int) [8]State {
	var out [8]State
	for i, off := range neighborOffsets {
		out[i] = f.Get(x+off[0], y+off[1])
	}
	return out
}

func (f *Field) aliveNeighbors(x, y int) int {
	n := 0
	for _, off := range neighborOffsets {
		if f.Get(x+off[0], y+off[1]) == Alive {
			n++
		}
	}
	return n
}

// StepCell computes the next state of (x, y) from the current generation.
func (f *Field) StepCell(x, y int) State {
	switch f.Get(x, y) {
	case Dead:
		if f.aliveNeighbors(x, y) == 3 {
			return Alive
		}
		return Dead
	case Alive:
		switch f.aliveNeighbors(x, y) {
		case 2, 3:
			return Alive
		default:
			return Dead
		}
	default:
		return Boundary
	}
}

// Advance computes the next generation from a snapshot of the current one
// and swaps it in.
func (f *Field) Advance() {
	f.stepRows(0, f.cur.H)
	f.swap()
}

// AdvanceParallel behaves like Advance but splits the rows across workers.
// Every worker reads the current generation and writes only to the next
// buffer; the swap happens after all of them finish. On cancellation the
// field is left at the current generation.
func (f *Field) AdvanceParallel(ctx context.Context, workers int) error {
	h := f.cur.H
	if workers <= 1 || h < 2 {
		f.Advance()
		return nil
	}
	if workers > h {
		workers = h
	}
	rowsPerWorker := (h + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < h; start += rowsPerWorker {
		start, end := start, min(start+rowsPerWorker, h)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f.stepRows(start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	f.swap()
	return nil
}

func (f *Field) stepRows(y0, y1 int) {
	next := f.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < f.cur.W; x++ {
			next[f.nxt.Index(x, y)] = f.StepCell(x, y)
		}
	}
}

func (f *Field) swap() {
	f.cur, f.nxt = f.nxt, f.cur
	f.generation++
}

// Population returns the number of Alive cells.
func (f *Field) Population() int {
	n := 0
	for _, s := range f.cur.Cells() {
		if s == Alive {
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of the current generation.
func (f *Field) Cells() []State {
	return append([]State(nil), f.cur.Cells()...)
}

// Each calls fn for every cell in row-major order.
func (f *Field) Each(fn func(x, y int, s State)) {
	cells := f.cur.Cells()
	for y := 0; y < f.cur.H; y++ {
		row := cells[y*f.cur.W : (y+1)*f.cur.W]
		for x, s := range row {
			fn(x, y, s)
		}
	}
}
