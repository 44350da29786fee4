package blocky

import (
	"fmt"
	"time"
)

// MoveKind identifies a player move.
type MoveKind uint8

const (
	MoveRotate  MoveKind = iota // Arg is a Direction
	MoveReflect                 // Arg is an Axis
	MoveSmash                   // Arg is ignored
)

// String returns the lower-case move name used in scripts and logs.
func (k MoveKind) String() string {
	switch k {
	case MoveRotate:
		return "rotate"
	case MoveReflect:
		return "reflect"
	case MoveSmash:
		return "smash"
	default:
		return fmt.Sprintf("MoveKind(%d)", uint8(k))
	}
}

// Move targets the block at Level containing the point (X, Y).
type Move struct {
	Kind  MoveKind
	Arg   int
	X, Y  int
	Level int
}

// MoveEvent is emitted after every move that reached the board.
type MoveEvent struct {
	Move      Move
	Applied   bool // false for a smash whose precondition failed
	PrevScore int
	Score     int
	Moves     int // applied moves so far, including this one
}

// EventStore is the interface for optional move observers, such as an ECS
// bridge. When set on a Board, every move that reached a block is forwarded.
type EventStore interface {
	EmitMove(event MoveEvent)
}

// Board is the top-level object that owns the block tree, the generator used
// for smashing, the goal, and the current selection. Boards are not safe for
// concurrent use.
type Board struct {
	root     *Block
	gen      *Generator
	goal     Goal
	store    EventStore
	debug    bool
	selected *Block
	moves    int
}

// NewBoard generates a random board from cfg. The root is sized to
// cfg.BoardSize at the origin and the goal is chosen per cfg.Goal.
func NewBoard(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.palette()
	if err != nil {
		return nil, err
	}
	gen := NewGenerator(cfg.Seed, palette)

	root := gen.Generate(0, cfg.MaxDepth)
	if err := root.UpdateSizeAndPosition(cfg.BoardSize, 0, 0); err != nil {
		return nil, fmt.Errorf("size board: %w", err)
	}
	goal, err := cfg.newGoal(gen)
	if err != nil {
		return nil, err
	}

	b := NewBoardFromRoot(root, gen, goal)
	b.debug = cfg.Debug
	return b, nil
}

// NewBoardFromRoot wraps an existing tree. root must be a level 0 block with
// its geometry already stamped.
func NewBoardFromRoot(root *Block, gen *Generator, goal Goal) *Board {
	return &Board{root: root, gen: gen, goal: goal}
}

// Root returns the root block.
func (b *Board) Root() *Block {
	return b.root
}

// Goal returns the board's goal.
func (b *Board) Goal() Goal {
	return b.goal
}

// SetGoal replaces the board's goal.
func (b *Board) SetGoal(g Goal) {
	b.goal = g
}

// Score evaluates the goal against the current board. Returns 0 without a goal.
func (b *Board) Score() int {
	if b.goal == nil {
		return 0
	}
	return b.goal.Score(b.root)
}

// Moves returns the number of moves applied so far.
func (b *Board) Moves() int {
	return b.moves
}

// SetEventStore sets the optional move observer.
func (b *Board) SetEventStore(store EventStore) {
	b.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, every move is
// logged to stderr and followed by a full invariant check that panics on
// violation.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// Select makes the block at level containing (x, y) the current selection
// and returns it. A point outside the board clears the selection and returns
// nil.
func (b *Board) Select(x, y, level int) (*Block, error) {
	sel, err := b.root.SelectedBlock(x, y, level)
	if err != nil {
		return nil, err
	}
	b.selected = sel
	return sel, nil
}

// Selected returns the current selection, or nil.
func (b *Board) Selected() *Block {
	return b.selected
}

// Apply selects the block targeted by m and performs the move on it.
// It reports whether the board changed: false for a point outside the board
// or a smash on the root or a max-depth block.
func (b *Board) Apply(m Move) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}

	var stats moveStats
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
		stats.move = m
		stats.prevScore = b.Score()
	}

	prev := 0
	if b.store != nil {
		prev = b.Score()
	}

	target, err := b.Select(m.X, m.Y, m.Level)
	if err != nil {
		return false, err
	}
	if target == nil {
		if b.debug {
			stats.score = stats.prevScore
			stats.elapsed = time.Since(t0)
			b.debugLog(stats)
		}
		return false, nil
	}

	applied := true
	switch m.Kind {
	case MoveRotate:
		err = target.Rotate(Direction(m.Arg))
	case MoveReflect:
		err = target.Reflect(Axis(m.Arg))
	case MoveSmash:
		if b.gen == nil {
			return false, fmt.Errorf("%w: smash on a board without a generator", ErrInvalidMove)
		}
		applied, err = target.Smash(b.gen)
	}
	if err != nil {
		return false, err
	}
	if applied {
		b.moves++
	}

	if b.debug {
		debugCheckTree(b.root, m.Kind.String())
		stats.target = target
		stats.applied = applied
		stats.score = b.Score()
		stats.elapsed = time.Since(t0)
		b.debugLog(stats)
	}

	if b.store != nil {
		b.store.EmitMove(MoveEvent{
			Move:      m,
			Applied:   applied,
			PrevScore: prev,
			Score:     b.Score(),
			Moves:     b.moves,
		})
	}
	return applied, nil
}

func (m Move) validate() error {
	switch m.Kind {
	case MoveRotate, MoveReflect:
		if m.Arg < 0 || m.Arg > 1 {
			return fmt.Errorf("%w: %s argument %d", ErrInvalidDirection, m.Kind, m.Arg)
		}
	case MoveSmash:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidMove, uint8(m.Kind))
	}
	return nil
}
