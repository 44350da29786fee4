package blocky

import (
	"math"
	"testing"
)

// scriptedRand replays fixed values so tests control every random branch.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func TestGenerateSubdividesBelowThreshold(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5}, ints: []int{0, 1, 2, 3}}
	gen := &Generator{Rand: rng, Palette: DefaultPalette}

	b := gen.Generate(0, 1)
	if b.IsLeaf() {
		t.Fatal("level 0 always subdivides (threshold 1)")
	}
	want := []Color{cR, cG, cB, cY}
	for i, child := range b.Children() {
		if child.Level() != 1 || child.MaxDepth() != 1 {
			t.Errorf("child %d level/maxDepth = %d/%d, want 1/1", i, child.Level(), child.MaxDepth())
		}
		if c, ok := child.Color(); !ok || c != want[i] {
			t.Errorf("child %d color = %v, want %v", i, c, want[i])
		}
	}
	if len(rng.floats) != 0 || len(rng.ints) != 0 {
		t.Error("max-depth children should draw only a color each")
	}
}

func TestGenerateThresholdDecaysWithLevel(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		draw   float64
		divide bool
	}{
		{"level 1 below", 1, math.Exp(-0.25) - 0.01, true},
		{"level 1 above", 1, math.Exp(-0.25) + 0.01, false},
		{"level 2 below", 2, 0.60, true},
		{"level 2 above", 2, 0.61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Children sit at max depth, so they only draw colors.
			rng := &scriptedRand{floats: []float64{tt.draw}, ints: []int{2, 2, 2, 2}}
			gen := &Generator{Rand: rng}
			b := gen.Generate(tt.level, tt.level+1)
			if b.IsLeaf() == tt.divide {
				t.Errorf("IsLeaf = %v, want %v", b.IsLeaf(), !tt.divide)
			}
			if b.IsLeaf() {
				if c, _ := b.Color(); c != cB {
					t.Errorf("leaf color = %v, want blue", c)
				}
			}
		})
	}
}

func TestGenerateAtMaxDepthIsLeaf(t *testing.T) {
	rng := &scriptedRand{ints: []int{3}}
	gen := &Generator{Rand: rng, Palette: DefaultPalette}
	b := gen.Generate(3, 3)
	if !b.IsLeaf() {
		t.Fatal("block at max depth must be a leaf")
	}
	if c, _ := b.Color(); c != cY {
		t.Errorf("color = %v, want yellow", c)
	}
}

func TestGenerateUsesCustomPalette(t *testing.T) {
	gen := NewGenerator(3, Palette{{Name: "green", Color: cG}})
	root := gen.Generate(0, 3)
	grid := root.Flatten()
	for r, row := range grid {
		for c, clr := range row {
			if clr != cG {
				t.Fatalf("cell (%d,%d) = %v, want green", r, c, clr)
			}
		}
	}
}

func TestNewGeneratorDeterministic(t *testing.T) {
	a, _ := randomBoard(t, 77, 4, 64)
	b, _ := randomBoard(t, 77, 4, 64)
	assertSameTree(t, treeDump(a), treeDump(b))
}

func TestNewGeneratorNilPaletteDefaults(t *testing.T) {
	gen := NewGenerator(1, nil)
	if len(gen.Palette) != len(DefaultPalette) {
		t.Errorf("palette len = %d, want %d", len(gen.Palette), len(DefaultPalette))
	}
}
