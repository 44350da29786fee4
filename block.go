package blocky

import "fmt"

// Block is a square region of the board. A block is either a leaf carrying a
// color, or subdivided into exactly four children stored in Quadrant order.
// Parents exclusively own their children; there are no back pointers.
type Block struct {
	// Geometry, in pixels. Re-stamped by UpdateSizeAndPosition.
	x, y int
	size int

	// Depth
	level    int
	maxDepth int

	// Leaf payload. Zero on subdivided blocks.
	color Color

	// nil for a leaf, otherwise four blocks indexed by Quadrant.
	children []*Block
}

// NewLeaf creates a leaf block with explicit geometry. The caller is
// responsible for the geometry matching the block's place in its tree and
// for c being non-zero; the zero Color is reserved for subdivided blocks.
func NewLeaf(x, y, size, level, maxDepth int, c Color) *Block {
	return &Block{x: x, y: y, size: size, level: level, maxDepth: maxDepth, color: c}
}

// NewBlock creates a subdivided block owning the given children, indexed by
// Quadrant. Panics if any child is nil.
func NewBlock(x, y, size, level, maxDepth int, children [4]*Block) *Block {
	b := &Block{x: x, y: y, size: size, level: level, maxDepth: maxDepth}
	b.children = make([]*Block, 4)
	for i, child := range children {
		if child == nil {
			panic("blocky: cannot subdivide with a nil child")
		}
		b.children[i] = child
	}
	return b
}

// Position returns the top-left corner of the block.
func (b *Block) Position() (x, y int) {
	return b.x, b.y
}

// Size returns the side length in pixels.
func (b *Block) Size() int {
	return b.size
}

// Bounds returns the square covered by the block.
func (b *Block) Bounds() Rect {
	return Rect{X: b.x, Y: b.y, Size: b.size}
}

// Level returns the subdivision depth; the root is level 0.
func (b *Block) Level() int {
	return b.level
}

// MaxDepth returns the tree-wide maximum subdivision depth.
func (b *Block) MaxDepth() int {
	return b.maxDepth
}

// Color returns the leaf color. ok is false for subdivided blocks.
func (b *Block) Color() (c Color, ok bool) {
	if !b.IsLeaf() {
		return Color{}, false
	}
	return b.color, true
}

// IsLeaf reports whether the block has no children.
func (b *Block) IsLeaf() bool {
	return len(b.children) == 0
}

// Children returns the child list in Quadrant order, or nil for a leaf.
// The returned slice MUST NOT be mutated by the caller.
func (b *Block) Children() []*Block {
	return b.children
}

// Child returns the child in quadrant q, or nil for a leaf.
func (b *Block) Child(q Quadrant) *Block {
	if b.IsLeaf() || q > QuadLowerRight {
		return nil
	}
	return b.children[q]
}

// String implements fmt.Stringer.
func (b *Block) String() string {
	return fmt.Sprintf("pos=(%d,%d), size=%d, level=%d", b.x, b.y, b.size, b.level)
}
