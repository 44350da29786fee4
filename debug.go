package blocky

import (
	"fmt"
	"os"
	"time"
)

// moveStats holds per-move timing and scoring, only populated when the
// board is in debug mode.
type moveStats struct {
	move      Move
	target    *Block
	applied   bool
	prevScore int
	score     int
	elapsed   time.Duration
}

// debugLog prints one line per applied move to stderr.
func (b *Board) debugLog(stats moveStats) {
	if !b.debug {
		return
	}
	where := "outside board"
	if stats.target != nil {
		where = stats.target.String()
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[blocky] %s(%d) at %s | applied: %v | score: %d -> %d | took: %v\n",
		stats.move.Kind, stats.move.Arg, where, stats.applied, stats.prevScore, stats.score, stats.elapsed)
}

// debugCheckTree panics with a descriptive message when the tree under root
// breaks an invariant. Only called in debug mode.
func debugCheckTree(root *Block, op string) {
	if err := CheckInvariants(root); err != nil {
		panic(fmt.Sprintf("blocky debug: after %s: %v", op, err))
	}
}

// CheckInvariants walks the tree and reports the first structural violation:
// child count other than 0 or 4, a leaf without a color, a color on a
// subdivided block, an invalid size, a level outside [0, maxDepth], or a
// child whose size, level, max depth or position disagrees with its parent.
// The error wraps ErrInvariant.
func CheckInvariants(root *Block) error {
	return checkBlock(root, "root")
}

func checkBlock(b *Block, path string) error {
	if n := len(b.children); n != 0 && n != 4 {
		return fmt.Errorf("%w: %s has %d children", ErrInvariant, path, n)
	}
	if b.level < 0 || b.level > b.maxDepth {
		return fmt.Errorf("%w: %s level %d outside [0, %d]", ErrInvariant, path, b.level, b.maxDepth)
	}
	if err := b.checkSize(b.size); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvariant, path, err)
	}
	if b.IsLeaf() {
		if b.color == (Color{}) {
			return fmt.Errorf("%w: %s is a leaf without a color", ErrInvariant, path)
		}
		return nil
	}
	if b.color != (Color{}) {
		return fmt.Errorf("%w: %s is subdivided but has a color", ErrInvariant, path)
	}

	half := b.size / 2
	for i, child := range b.children {
		q := Quadrant(i)
		childPath := path + "/" + q.String()
		if child == nil {
			return fmt.Errorf("%w: %s is nil", ErrInvariant, childPath)
		}
		dx, dy := q.offset(half)
		switch {
		case child.size != half:
			return fmt.Errorf("%w: %s size %d, want %d", ErrInvariant, childPath, child.size, half)
		case child.level != b.level+1:
			return fmt.Errorf("%w: %s level %d, want %d", ErrInvariant, childPath, child.level, b.level+1)
		case child.maxDepth != b.maxDepth:
			return fmt.Errorf("%w: %s max depth %d, want %d", ErrInvariant, childPath, child.maxDepth, b.maxDepth)
		case child.x != b.x+dx || child.y != b.y+dy:
			return fmt.Errorf("%w: %s at (%d,%d), want (%d,%d)",
				ErrInvariant, childPath, child.x, child.y, b.x+dx, b.y+dy)
		}
		if err := checkBlock(child, childPath); err != nil {
			return err
		}
	}
	return nil
}
