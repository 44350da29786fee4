// Package blocky implements the board of a tile-splitting puzzle game.
//
// A board is a square recursively divided into four quadrants down to a
// fixed maximum depth. Undivided regions hold a color. Players rotate,
// reflect and smash regions to build the largest blob of a target color or
// to line the board's edge with it.
//
// # Blocks
//
// Every region is a [Block]. A block is either a leaf with a color or
// subdivided into exactly four children, indexed by [Quadrant] in the order
// upper-right, upper-left, lower-left, lower-right. Geometry is in pixels;
// a child is half its parent's size and sits at its quadrant's offset. The
// smallest blocks, at the maximum depth, are the board's unit cells.
//
// Random boards come from a [Generator], which owns the randomness so games
// are reproducible from a seed:
//
//	gen := blocky.NewGenerator(42, blocky.DefaultPalette)
//	root := gen.Generate(0, 4)
//	if err := root.UpdateSizeAndPosition(512, 0, 0); err != nil {
//		// size cannot be halved down to depth 4
//	}
//
// [Block.Rotate], [Block.Reflect] and [Block.Smash] restructure a subtree in
// place and re-stamp its geometry. [Block.SelectedBlock] hit-tests a point
// at a given level. [Block.Flatten] produces the [Grid] of unit-cell
// colors that goals score.
//
// # Goals
//
// [BlobGoal] scores the largest 4-connected region of the target color.
// [PerimeterGoal] scores target cells on the board's edge, corners counting
// twice. Both implement [Goal].
//
// # Boards and play
//
// [Board] ties a tree to a goal, a generator and a selection, and applies
// [Move] values. [LoadMoveScript] and [Board.Play] replay recorded games.
// [Run] opens an [Ebitengine] window for interactive play; [DrawCommands]
// renders the primitives from [Block.BlocksToDraw] onto any ebiten image.
//
// Move events can be forwarded to an ECS world with the [Donburi] adapter
// in blocky/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package blocky
