package life

import (
	"context"
	"slices"
	"testing"

	"life3d/pkg/core"
)

func TestGetOutsideIsBoundary(t *testing.T) {
	f := New(4, 3, Alive)
	coords := [][2]int{
		{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-1, -1}, {4, 3},
		{-1 << 30, 0}, {0, 1<<30 - 1}, {1 << 30, -(1 << 30)},
	}
	for _, c := range coords {
		if got := f.Get(c[0], c[1]); got != Boundary {
			t.Fatalf("Get(%d,%d) = %v, expected boundary", c[0], c[1], got)
		}
	}
	if got := f.Get(3, 2); got != Alive {
		t.Fatalf("Get(3,2) = %v, expected alive", got)
	}
}

func TestNewClampsAndNeverStoresBoundary(t *testing.T) {
	f := New(0, -2, Boundary)
	if f.Width() != 1 || f.Height() != 1 {
		t.Fatalf("expected 1x1 field, got %dx%d", f.Width(), f.Height())
	}
	if got := f.Get(0, 0); got != Dead {
		t.Fatalf("boundary default stored as %v, expected dead", got)
	}
	if f.Set(0, 0, Boundary) {
		t.Fatal("Set must reject Boundary")
	}
	if f.Set(1, 0, Alive) {
		t.Fatal("Set must reject out-of-range coordinates")
	}
}

// seedNeighbors places n Alive cells around the centre of a 3x3 field.
func seedNeighbors(center State, n int) *Field {
	f := New(3, 3, Dead)
	f.Set(1, 1, center)
	for i, off := range neighborOffsets {
		if i >= n {
			break
		}
		f.Set(1+off[0], 1+off[1], Alive)
	}
	return f
}

func TestDeadCellRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		f := seedNeighbors(Dead, n)
		want := Dead
		if n == 3 {
			want = Alive
		}
		if got := f.StepCell(1, 1); got != want {
			t.Fatalf("dead cell with %d alive neighbours became %v, expected %v", n, got, want)
		}
	}
}

func TestAliveCellRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		f := seedNeighbors(Alive, n)
		want := Dead
		if n == 2 || n == 3 {
			want = Alive
		}
		if got := f.StepCell(1, 1); got != want {
			t.Fatalf("alive cell with %d alive neighbours became %v, expected %v", n, got, want)
		}
	}
}

func TestBoundaryIsAbsorbing(t *testing.T) {
	f := New(3, 3, Alive)
	if got := f.StepCell(-1, 1); got != Boundary {
		t.Fatalf("StepCell outside the field = %v, expected boundary", got)
	}
	if got := f.StepCell(3, 3); got != Boundary {
		t.Fatalf("StepCell outside the field = %v, expected boundary", got)
	}
}

func TestNeighborsOrder(t *testing.T) {
	f := New(3, 3, Dead)
	// Only north (y+1) and west (x-1) alive.
	f.Set(1, 2, Alive)
	f.Set(0, 1, Alive)

	got := f.Neighbors(1, 1)
	want := [8]State{Dead, Alive, Dead, Dead, Alive, Dead, Dead, Dead}
	if got != want {
		t.Fatalf("neighbours = %v, expected %v", got, want)
	}

	corner := f.Neighbors(0, 0)
	wantCorner := [8]State{Boundary, Alive, Dead, Dead, Boundary, Boundary, Boundary, Boundary}
	if corner != wantCorner {
		t.Fatalf("corner neighbours = %v, expected %v", corner, wantCorner)
	}
}

func assertAlive(t *testing.T, f *Field, alive map[[2]int]bool, stage string) {
	t.Helper()
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			got := f.Get(x, y) == Alive
			if got != alive[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, got, alive[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerAgainstBoundary(t *testing.T) {
	f := New(3, 3, Dead)
	f.Set(0, 1, Alive)
	f.Set(1, 1, Alive)
	f.Set(2, 1, Alive)

	horizontal := map[[2]int]bool{{0, 1}: true, {1, 1}: true, {2, 1}: true}
	vertical := map[[2]int]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}

	f.Advance()
	assertAlive(t, f, vertical, "after first advance")
	f.Advance()
	assertAlive(t, f, horizontal, "after second advance")
	f.Advance()
	assertAlive(t, f, vertical, "after third advance")

	if f.Generation() != 3 {
		t.Fatalf("generation = %d, expected 3", f.Generation())
	}
}

func TestAdvanceUsesSnapshot(t *testing.T) {
	f := New(5, 5, Dead)
	f.Set(2, 1, Alive)
	f.Set(2, 2, Alive)
	f.Set(2, 3, Alive)

	// Stepping in place would read (2,1) as already dead when visiting (1,2)
	// and never grow the horizontal arm.
	f.Advance()
	assertAlive(t, f, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after advance")
	if f.Population() != 3 {
		t.Fatalf("population = %d, expected 3", f.Population())
	}
}

func TestBlockIsStill(t *testing.T) {
	f := New(4, 4, Dead)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		f.Set(c[0], c[1], Alive)
	}
	before := f.Cells()
	f.Advance()
	if !slices.Equal(before, f.Cells()) {
		t.Fatal("block must be a still life")
	}
}

func TestAdvanceParallelMatchesSerial(t *testing.T) {
	serial := New(37, 23, Dead)
	parallel := New(37, 23, Dead)
	if err := Seed(serial, "random", core.NewRNG(7), PatternOptions{Density: 0.35}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(parallel, "random", core.NewRNG(7), PatternOptions{Density: 0.35}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for gen := 1; gen <= 25; gen++ {
		serial.Advance()
		if err := parallel.AdvanceParallel(context.Background(), 4); err != nil {
			t.Fatalf("generation %d: %v", gen, err)
		}
		if !slices.Equal(serial.Cells(), parallel.Cells()) {
			t.Fatalf("generation %d differs between serial and parallel advance", gen)
		}
	}
	if parallel.Generation() != serial.Generation() {
		t.Fatalf("generation counters differ: %d vs %d", parallel.Generation(), serial.Generation())
	}
}

func TestAdvanceParallelCancelled(t *testing.T) {
	f := New(8, 8, Dead)
	f.Set(3, 3, Alive)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.AdvanceParallel(ctx, 4); err == nil {
		t.Fatal("expected cancellation error")
	}
	if f.Generation() != 0 || f.Get(3, 3) != Alive {
		t.Fatal("cancelled advance must leave the field untouched")
	}
}

func TestEachVisitsRowMajor(t *testing.T) {
	f := New(3, 2, Dead)
	f.Set(2, 1, Alive)
	var visited [][2]int
	f.Each(func(x, y int, s State) {
		visited = append(visited, [2]int{x, y})
		if (x == 2 && y == 1) != (s == Alive) {
			t.Fatalf("unexpected state %v at (%d,%d)", s, x, y)
		}
	})
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if !slices.Equal(visited, want) {
		t.Fatalf("visit order %v, expected %v", visited, want)
	}
}

func BenchmarkAdvance(b *testing.B) {
	f := New(200, 200, Dead)
	Seed(f, "random", core.NewRNG(1), PatternOptions{Density: 0.3})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Advance()
	}
}

func BenchmarkAdvanceParallel(b *testing.B) {
	f := New(200, 200, Dead)
	Seed(f, "random", core.NewRNG(1), PatternOptions{Density: 0.3})
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.AdvanceParallel(ctx, 8)
	}
}
