package blocky

import "fmt"

// SelectedBlock returns the block at the given level whose square contains
// the point (x, y). If the subtree bottoms out in a leaf above that level,
// the leaf is returned instead, being the closest available level.
//
// Fails with ErrInvalidLevel unless b.Level() <= level <= b.MaxDepth().
// Returns a nil block and nil error if (x, y) lies outside b.
func (b *Block) SelectedBlock(x, y, level int) (*Block, error) {
	if level < b.level || level > b.maxDepth {
		return nil, fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidLevel, level, b.level, b.maxDepth)
	}
	if !b.Bounds().Contains(x, y) {
		return nil, nil
	}
	n := b
	for n.level != level && !n.IsLeaf() {
		n = n.children[n.quadrantAt(x, y)]
	}
	return n, nil
}

// quadrantAt picks the child covering (x, y) by comparing each coordinate
// against the block's midpoint. (x, y) must lie inside b.
func (b *Block) quadrantAt(x, y int) Quadrant {
	mid := b.size / 2
	right := x >= b.x+mid
	lower := y >= b.y+mid
	switch {
	case right && !lower:
		return QuadUpperRight
	case !right && !lower:
		return QuadUpperLeft
	case !right && lower:
		return QuadLowerLeft
	default:
		return QuadLowerRight
	}
}
