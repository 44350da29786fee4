package blocky

// Grid is a square, row-major array of unit-cell colors: Grid[row][col],
// with row increasing downward and Grid[0][0] the top-left cell.
type Grid [][]Color

// newGrid allocates a side x side grid backed by one contiguous slice.
func newGrid(side int) Grid {
	cells := make([]Color, side*side)
	g := make(Grid, side)
	for r := range g {
		g[r] = cells[r*side : (r+1)*side : (r+1)*side]
	}
	return g
}

// Side returns the number of rows (and columns).
func (g Grid) Side() int {
	return len(g)
}

// Equal reports whether g and other hold the same colors cell for cell.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Flatten returns the block as a grid of unit cells. The grid side is
// 2^(maxDepth-level) regardless of the block's pixel size.
func (b *Block) Flatten() Grid {
	side := 1 << (b.maxDepth - b.level)
	g := newGrid(side)
	b.flattenInto(g, 0, 0, side)
	return g
}

// flattenInto writes the block into the side x side window of g whose
// top-left cell is (row, col).
func (b *Block) flattenInto(g Grid, row, col, side int) {
	if b.IsLeaf() || side == 1 {
		for r := row; r < row+side; r++ {
			for c := col; c < col+side; c++ {
				g[r][c] = b.color
			}
		}
		return
	}
	step := side / 2
	for i, child := range b.children {
		dx, dy := Quadrant(i).offset(step)
		child.flattenInto(g, row+dy, col+dx, step)
	}
}
