package blocky

import "fmt"

// UpdateSizeAndPosition stamps size and top-left position onto the block and
// recursively onto its subtree: each child gets half the size and the offset
// of its quadrant. Fails with ErrInvalidSize if size is negative, odd and not
// 1, or 1 above the maximum depth, at this block or any descendant. The
// whole subtree is checked first, so a failed call changes nothing.
//
// Transforms call this themselves; it only needs to be called directly after
// building or restructuring a tree by hand.
func (b *Block) UpdateSizeAndPosition(size, x, y int) error {
	if err := b.checkSubtreeSize(size); err != nil {
		return err
	}
	b.stamp(size, x, y)
	return nil
}

// checkSubtreeSize validates size at b and the halved sizes at every
// descendant without modifying anything.
func (b *Block) checkSubtreeSize(size int) error {
	if err := b.checkSize(size); err != nil {
		return err
	}
	for _, child := range b.children {
		if err := child.checkSubtreeSize(size / 2); err != nil {
			return err
		}
	}
	return nil
}

// stamp writes geometry onto the subtree. Sizes must already be validated.
func (b *Block) stamp(size, x, y int) {
	b.size = size
	b.x = x
	b.y = y
	half := size / 2
	for i, child := range b.children {
		dx, dy := Quadrant(i).offset(half)
		child.stamp(half, x+dx, y+dy)
	}
}

// resync re-stamps the subtree using the block's current geometry.
func (b *Block) resync() error {
	return b.UpdateSizeAndPosition(b.size, b.x, b.y)
}

func (b *Block) checkSize(size int) error {
	switch {
	case size < 0:
		return fmt.Errorf("%w: %d is negative (level %d)", ErrInvalidSize, size, b.level)
	case size%2 != 0 && size != 1:
		return fmt.Errorf("%w: %d is odd (level %d)", ErrInvalidSize, size, b.level)
	case size == 1 && b.level != b.maxDepth:
		return fmt.Errorf("%w: unit size at level %d above max depth %d", ErrInvalidSize, b.level, b.maxDepth)
	}
	return nil
}
