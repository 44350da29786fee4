package blocky

import (
	"errors"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when converting for rendering.
//
// The zero Color marks the absent color of a subdivided block; palette colors
// are always opaque.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to premultiplied 8-bit RGBA for ebiten's vector package.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: to8(clamp01(c.R) * a),
		G: to8(clamp01(c.G) * a),
		B: to8(clamp01(c.B) * a),
		A: to8(a),
	}
}

// toNRGBA converts to straight-alpha 8-bit RGBA for image encoding.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(clamp01(c.R)),
		G: to8(clamp01(c.G)),
		B: to8(clamp01(c.B)),
		A: to8(clamp01(c.A)),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func to8(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

// Rect is an axis-aligned square in unit-cell coordinates. The origin is the
// top-left corner of the board, with Y increasing downward.
type Rect struct {
	X, Y, Size int
}

// Contains reports whether the point (x, y) lies inside the square.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Size &&
		y >= r.Y && y < r.Y+r.Size
}

// Quadrant indexes the four children of a subdivided block.
type Quadrant uint8

const (
	QuadUpperRight Quadrant = iota // child 0
	QuadUpperLeft                  // child 1
	QuadLowerLeft                  // child 2
	QuadLowerRight                 // child 3
)

// offset returns the quadrant's top-left corner relative to its parent's,
// where half is the side of one child.
func (q Quadrant) offset(half int) (dx, dy int) {
	switch q {
	case QuadUpperRight:
		return half, 0
	case QuadUpperLeft:
		return 0, 0
	case QuadLowerLeft:
		return 0, half
	default:
		return half, half
	}
}

// String returns the short quadrant name.
func (q Quadrant) String() string {
	switch q {
	case QuadUpperRight:
		return "UR"
	case QuadUpperLeft:
		return "UL"
	case QuadLowerLeft:
		return "LL"
	case QuadLowerRight:
		return "LR"
	default:
		return "??"
	}
}

// Axis selects a reflection. Values other than the two constants are rejected
// with ErrInvalidDirection.
type Axis uint8

const (
	ReflectHorizontal Axis = iota // swaps upper and lower quadrants (UR<->LR, UL<->LL)
	ReflectVertical               // swaps left and right quadrants (UR<->UL, LL<->LR)
)

// Direction selects a rotation. Values other than the two constants are
// rejected with ErrInvalidDirection.
type Direction uint8

const (
	CounterClockwise Direction = iota // UR -> UL -> LL -> LR -> UR
	Clockwise                         // UR -> LR -> LL -> UL -> UR
)

// Errors returned for caller-contract violations. Returned errors wrap one of
// these and can be matched with errors.Is.
var (
	ErrInvalidSize      = errors.New("blocky: invalid size")
	ErrInvalidLevel     = errors.New("blocky: invalid level")
	ErrInvalidDirection = errors.New("blocky: invalid direction")
	ErrInvalidMove      = errors.New("blocky: invalid move")
	ErrInvalidConfig    = errors.New("blocky: invalid config")
	ErrInvalidScript    = errors.New("blocky: invalid move script")
	ErrInvariant        = errors.New("blocky: invariant violated")
)
