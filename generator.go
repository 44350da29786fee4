package blocky

import (
	"math"
	"math/rand/v2"
)

// subdivideDecay controls how quickly the chance of subdividing falls off with
// depth: a block at level l subdivides with probability exp(-subdivideDecay*l).
const subdivideDecay = 0.25

// pcgStream is xored into the seed to derive the PCG stream selector.
const pcgStream = 0x9e3779b97f4a7c15

// Rand is the source of randomness used by generation and smashing.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Generator produces random blocks. There is no package-level generator;
// callers pass one explicitly so boards are reproducible from a seed.
type Generator struct {
	Rand    Rand
	Palette Palette
}

// NewGenerator creates a generator backed by a PCG source seeded with seed.
// A nil palette selects DefaultPalette.
func NewGenerator(seed uint64, palette Palette) *Generator {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Generator{
		Rand:    rand.New(rand.NewPCG(seed, seed^pcgStream)),
		Palette: palette,
	}
}

// Generate creates a random block at the given level. Below maxDepth the
// block subdivides with probability exp(-0.25*level) and generates its four
// children recursively; otherwise it becomes a leaf with a uniformly chosen
// palette color. Geometry is left zero until UpdateSizeAndPosition is called.
func (g *Generator) Generate(level, maxDepth int) *Block {
	b := &Block{level: level, maxDepth: maxDepth}
	if level < maxDepth && g.Rand.Float64() < math.Exp(-subdivideDecay*float64(level)) {
		b.children = make([]*Block, 4)
		for i := range b.children {
			b.children[i] = g.Generate(level+1, maxDepth)
		}
		return b
	}
	b.color = g.randomSwatch().Color
	return b
}

func (g *Generator) palette() Palette {
	if len(g.Palette) == 0 {
		return DefaultPalette
	}
	return g.Palette
}

func (g *Generator) randomSwatch() Swatch {
	p := g.palette()
	return p[g.Rand.IntN(len(p))]
}
