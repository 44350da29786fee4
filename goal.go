package blocky

// Goal scores a board against a target color.
type Goal interface {
	// Score flattens board and returns the goal's score for it.
	Score(board *Block) int
	// Description is a sentence shown to the player.
	Description() string
}

// --- Blob ---

// BlobGoal scores the size of the largest connected region of the target color.
type BlobGoal struct {
	Target Swatch
}

// NewBlobGoal creates a BlobGoal for the given target.
func NewBlobGoal(target Swatch) *BlobGoal {
	return &BlobGoal{Target: target}
}

// Score implements Goal.
func (g *BlobGoal) Score(board *Block) int {
	return LargestBlob(board.Flatten(), g.Target.Color)
}

// Description implements Goal.
func (g *BlobGoal) Description() string {
	return "Create the largest connected blob of " + g.Target.Name +
		" blocks, anywhere within the block"
}

// blobNeighbours are the 4-connected row/col offsets. Diagonals do not connect.
var blobNeighbours = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// LargestBlob returns the size of the largest 4-connected region of cells
// equal to target, or 0 if target does not appear. Each cell is visited once.
func LargestBlob(g Grid, target Color) int {
	side := g.Side()
	visited := make([]bool, side*side)
	var stack []int
	best := 0

	for start := range visited {
		if visited[start] {
			continue
		}
		visited[start] = true
		if g[start/side][start%side] != target {
			continue
		}

		size := 0
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			cell := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			row, col := cell/side, cell%side
			for _, d := range blobNeighbours {
				r, c := row+d[0], col+d[1]
				if r < 0 || c < 0 || r >= side || c >= side {
					continue
				}
				n := r*side + c
				if visited[n] {
					continue
				}
				visited[n] = true
				if g[r][c] == target {
					stack = append(stack, n)
				}
			}
		}
		best = max(best, size)
	}
	return best
}

// --- Perimeter ---

// PerimeterGoal scores target-colored cells along the outer edge of the board.
type PerimeterGoal struct {
	Target Swatch
}

// NewPerimeterGoal creates a PerimeterGoal for the given target.
func NewPerimeterGoal(target Swatch) *PerimeterGoal {
	return &PerimeterGoal{Target: target}
}

// Score implements Goal.
func (g *PerimeterGoal) Score(board *Block) int {
	return PerimeterScore(board.Flatten(), g.Target.Color)
}

// Description implements Goal.
func (g *PerimeterGoal) Description() string {
	return "Place the highest number of " + g.Target.Name +
		" unit cells along the outer perimeter of the board. Corner cell count twice toward the final score!"
}

// PerimeterScore counts target cells on the border of g. Edge cells count
// once and the four corners count twice.
func PerimeterScore(g Grid, target Color) int {
	last := g.Side() - 1
	score := 0
	for r, row := range g {
		for c, cell := range row {
			if cell != target {
				continue
			}
			if r == 0 || r == last {
				score++
			}
			if c == 0 || c == last {
				score++
			}
		}
	}
	return score
}

// NewRandomGoal picks a target color from the generator's palette and then
// either a BlobGoal or a PerimeterGoal with equal probability.
func NewRandomGoal(gen *Generator) Goal {
	target := gen.randomSwatch()
	if gen.Rand.IntN(2) == 0 {
		return NewBlobGoal(target)
	}
	return NewPerimeterGoal(target)
}
