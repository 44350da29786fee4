package blocky

import "fmt"

// --- Smash ---

// Smash replaces the block's children (if any) with four freshly generated
// ones at level+1 and clears its color. The root and blocks at the maximum
// depth cannot be smashed; for them Smash returns false and changes nothing.
//
// An error is returned only if the block's size cannot be split down to the
// maximum depth, in which case the block is also left unchanged.
func (b *Block) Smash(gen *Generator) (bool, error) {
	if b.level <= 0 || b.level >= b.maxDepth {
		return false, nil
	}

	staged := &Block{x: b.x, y: b.y, size: b.size, level: b.level, maxDepth: b.maxDepth}
	staged.children = make([]*Block, 4)
	for i := range staged.children {
		staged.children[i] = gen.Generate(b.level+1, b.maxDepth)
	}
	if err := staged.resync(); err != nil {
		return false, err
	}

	b.children = staged.children
	b.color = Color{}
	return true, nil
}

// --- Reflect ---

// Reflect mirrors the block and its whole subtree. ReflectHorizontal swaps
// the upper and lower halves, ReflectVertical swaps the left and right
// halves. Leaves are unaffected.
func (b *Block) Reflect(axis Axis) error {
	if axis > ReflectVertical {
		return fmt.Errorf("%w: reflect axis %d", ErrInvalidDirection, axis)
	}
	if b.IsLeaf() {
		return nil
	}
	b.reflect(axis)
	return b.resync()
}

func (b *Block) reflect(axis Axis) {
	if axis == ReflectHorizontal {
		b.swapChildren(QuadUpperRight, QuadLowerRight)
		b.swapChildren(QuadUpperLeft, QuadLowerLeft)
	} else {
		b.swapChildren(QuadUpperRight, QuadUpperLeft)
		b.swapChildren(QuadLowerLeft, QuadLowerRight)
	}
	for _, child := range b.children {
		if !child.IsLeaf() {
			child.reflect(axis)
		}
	}
}

// --- Rotate ---

// Rotate turns the block and its whole subtree a quarter turn. Leaves are
// unaffected.
func (b *Block) Rotate(dir Direction) error {
	if dir > Clockwise {
		return fmt.Errorf("%w: rotate direction %d", ErrInvalidDirection, dir)
	}
	if b.IsLeaf() {
		return nil
	}
	b.rotate(dir)
	return b.resync()
}

// rotate rotates the children's contents first, then cycles the four slots.
// Counter-clockwise: UR->UL, UL->LL, LL->LR, LR->UR.
// Clockwise:         UR->LR, LR->LL, LL->UL, UL->UR.
func (b *Block) rotate(dir Direction) {
	for _, child := range b.children {
		if !child.IsLeaf() {
			child.rotate(dir)
		}
	}
	if dir == CounterClockwise {
		b.swapChildren(QuadUpperRight, QuadUpperLeft)
		b.swapChildren(QuadUpperRight, QuadLowerRight)
		b.swapChildren(QuadLowerLeft, QuadLowerRight)
	} else {
		b.swapChildren(QuadUpperRight, QuadLowerRight)
		b.swapChildren(QuadUpperRight, QuadUpperLeft)
		b.swapChildren(QuadUpperLeft, QuadLowerLeft)
	}
}

// swapChildren exchanges the children in slots i and j along with their
// position stamps. Both have the same size. Descendants keep stale positions
// until the next resync.
func (b *Block) swapChildren(i, j Quadrant) {
	ci, cj := b.children[i], b.children[j]
	b.children[i], b.children[j] = cj, ci
	ci.x, cj.x = cj.x, ci.x
	ci.y, cj.y = cj.y, ci.y
}
