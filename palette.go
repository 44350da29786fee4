package blocky

import "fmt"

// Block colors of the default palette.
var (
	ColorRed    = Color{R: 0.784, G: 0.165, B: 0.165, A: 1}
	ColorGreen  = Color{R: 0.180, G: 0.624, B: 0.290, A: 1}
	ColorBlue   = Color{R: 0.161, G: 0.329, B: 0.784, A: 1}
	ColorYellow = Color{R: 0.949, G: 0.800, B: 0.149, A: 1}
)

// Fixed colors for frames and the selection highlight.
var (
	FrameColor     = Color{R: 0, G: 0, B: 0, A: 1}
	HighlightColor = Color{R: 1, G: 1, B: 1, A: 1}
)

// Swatch is a named palette color.
type Swatch struct {
	Name  string
	Color Color
}

// Palette is an ordered list of leaf colors. Random generation picks
// uniformly by index, so order matters for reproducible boards.
type Palette []Swatch

// DefaultPalette holds the four standard block colors.
var DefaultPalette = Palette{
	{Name: "red", Color: ColorRed},
	{Name: "green", Color: ColorGreen},
	{Name: "blue", Color: ColorBlue},
	{Name: "yellow", Color: ColorYellow},
}

// Name returns the name of color c, or "" if c is not in the palette.
func (p Palette) Name(c Color) string {
	for _, s := range p {
		if s.Color == c {
			return s.Name
		}
	}
	return ""
}

// Lookup returns the swatch with the given name.
func (p Palette) Lookup(name string) (Swatch, bool) {
	for _, s := range p {
		if s.Name == name {
			return s, true
		}
	}
	return Swatch{}, false
}

// Subset returns a palette holding the named swatches in the order given.
func (p Palette) Subset(names []string) (Palette, error) {
	sub := make(Palette, 0, len(names))
	for _, name := range names {
		s, ok := p.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
		sub = append(sub, s)
	}
	return sub, nil
}
