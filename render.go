package blocky

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Stroke widths used by the emitted commands.
const (
	strokeFill      = 0 // filled square
	strokeFrame     = 3 // leaf border
	strokeHighlight = 5 // selection frame
)

// DrawCommand is a single square to draw. StrokeWidth 0 means filled;
// anything else is an outline of that thickness.
type DrawCommand struct {
	Color       Color
	X, Y        int
	Size        int
	StrokeWidth int
}

// BlocksToDraw walks the subtree and emits, for every leaf, a filled square
// in the leaf's color followed by a border in FrameColor. The order between
// leaves is unspecified.
func (b *Block) BlocksToDraw() []DrawCommand {
	cmds := make([]DrawCommand, 0, 8)
	return b.appendDrawCommands(cmds)
}

func (b *Block) appendDrawCommands(cmds []DrawCommand) []DrawCommand {
	if b.IsLeaf() {
		return append(cmds,
			DrawCommand{Color: b.color, X: b.x, Y: b.y, Size: b.size, StrokeWidth: strokeFill},
			DrawCommand{Color: FrameColor, X: b.x, Y: b.y, Size: b.size, StrokeWidth: strokeFrame},
		)
	}
	for _, child := range b.children {
		cmds = child.appendDrawCommands(cmds)
	}
	return cmds
}

// HighlightedFrame returns the selection outline for the block.
func (b *Block) HighlightedFrame() DrawCommand {
	return DrawCommand{Color: HighlightColor, X: b.x, Y: b.y, Size: b.size, StrokeWidth: strokeHighlight}
}

// DrawCommands rasterises cmds onto dst. All fills are drawn before any
// outline so frames are never covered by a neighbouring fill.
func DrawCommands(dst *ebiten.Image, cmds []DrawCommand) {
	fills, strokes := splitDrawCommands(cmds)
	for _, cmd := range fills {
		x, y, s := float32(cmd.X), float32(cmd.Y), float32(cmd.Size)
		vector.DrawFilledRect(dst, x, y, s, s, cmd.Color.toRGBA(), false)
	}
	for _, cmd := range strokes {
		x, y, s := float32(cmd.X), float32(cmd.Y), float32(cmd.Size)
		vector.StrokeRect(dst, x, y, s, s, float32(cmd.StrokeWidth), cmd.Color.toRGBA(), false)
	}
}

// splitDrawCommands partitions cmds into fills and outlines, keeping the
// relative order within each group.
func splitDrawCommands(cmds []DrawCommand) (fills, strokes []DrawCommand) {
	for _, cmd := range cmds {
		if cmd.StrokeWidth == strokeFill {
			fills = append(fills, cmd)
		} else {
			strokes = append(strokes, cmd)
		}
	}
	return fills, strokes
}
