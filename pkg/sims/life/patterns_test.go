package life

import (
	"slices"
	"testing"

	"life3d/pkg/core"
)

func TestPatternsRegistered(t *testing.T) {
	want := []string{"blinker", "blocks", "empty", "glider", "random"}
	if got := Patterns(); !slices.Equal(got, want) {
		t.Fatalf("patterns = %v, expected %v", got, want)
	}
}

func TestSeedUnknownPattern(t *testing.T) {
	f := New(4, 4, Alive)
	if err := Seed(f, "nope", nil, PatternOptions{}); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
	if f.Population() != 16 {
		t.Fatal("failed seed must not touch the field")
	}
}

func TestSeedBlocks(t *testing.T) {
	f := New(200, 200, Dead)
	if err := Seed(f, "blocks", nil, PatternOptions{}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if f.Population() != 48 {
		t.Fatalf("population = %d, expected 48", f.Population())
	}
	for _, c := range [][2]int{{6, 6}, {7, 11}, {14, 14}, {11, 13}, {9, 7}, {14, 6}} {
		if f.Get(c[0], c[1]) != Alive {
			t.Fatalf("cell (%d,%d) expected alive", c[0], c[1])
		}
	}
}

func TestSeedCenteredBlinker(t *testing.T) {
	f := New(5, 5, Dead)
	if err := Seed(f, "blinker", nil, PatternOptions{Center: true}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	assertAlive(t, f, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "centred blinker")
}

func TestSeedClipsAtEdge(t *testing.T) {
	f := New(4, 4, Dead)
	if err := Seed(f, "glider", nil, PatternOptions{X: 2, Y: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Only (3,1), (2,3) and (3,3) of the shifted glider fit.
	if f.Population() != 3 {
		t.Fatalf("population = %d, expected 3", f.Population())
	}
}

func TestSeedRandomDeterministic(t *testing.T) {
	a := New(16, 16, Dead)
	b := New(16, 16, Dead)
	Seed(a, "random", core.NewRNG(5), PatternOptions{Density: 0.5})
	Seed(b, "random", core.NewRNG(5), PatternOptions{Density: 0.5})
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random pattern must be deterministic for a given seed")
	}
	if a.Population() == 0 || a.Population() == 256 {
		t.Fatalf("implausible random population %d", a.Population())
	}
}

func TestSeedRandomHalfDensityIsCoinFlip(t *testing.T) {
	f := New(8, 4, Dead)
	Seed(f, "random", core.NewRNG(11), PatternOptions{Density: 0.5})

	rng := core.NewRNG(11)
	f.Each(func(x, y int, s State) {
		want := Dead
		if rng.Bool() {
			want = Alive
		}
		if s != want {
			t.Fatalf("cell (%d,%d) = %v, expected %v", x, y, s, want)
		}
	})
}

func TestSeedResetsGeneration(t *testing.T) {
	f := New(5, 5, Dead)
	f.Advance()
	Seed(f, "empty", nil, PatternOptions{})
	if f.Generation() != 0 || f.Population() != 0 {
		t.Fatal("seeding must reset the field")
	}
}
