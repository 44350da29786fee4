package blocky

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	statusBarHeight    = 40
	defaultPulsePeriod = 1.2 // seconds
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height default to the board size plus a status bar.
	Width, Height int
	// PulsePeriod is the selection highlight cycle in seconds.
	PulsePeriod float32
}

// keyMoves maps keys to moves on the current selection. X, Y and Level are
// filled in from the selection when the key is pressed.
var keyMoves = map[ebiten.Key]Move{
	ebiten.KeyL: {Kind: MoveRotate, Arg: int(CounterClockwise)},
	ebiten.KeyR: {Kind: MoveRotate, Arg: int(Clockwise)},
	ebiten.KeyH: {Kind: MoveReflect, Arg: int(ReflectHorizontal)},
	ebiten.KeyV: {Kind: MoveReflect, Arg: int(ReflectVertical)},
	ebiten.KeyS: {Kind: MoveSmash},
}

// moveKeys fixes the order in which keys pressed on the same tick apply.
var moveKeys = []ebiten.Key{ebiten.KeyL, ebiten.KeyR, ebiten.KeyH, ebiten.KeyV, ebiten.KeyS}

// Run opens a window and plays board interactively until the window is
// closed or Escape is pressed.
//
// Click selects the block under the pointer at the current level, Up and
// Down change the level, L and R rotate, H and V reflect, S smashes.
func Run(board *Board, cfg RunConfig) error {
	g := newGame(board, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	return gameExitError(ebiten.RunGame(g))
}

// gameExitError drops the Termination sentinel, wrapped or not, used to quit
// the loop cleanly.
func gameExitError(err error) error {
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts a Board to ebiten.Game.
type game struct {
	board  *Board
	level  int
	pulse  *HighlightPulse
	width  int
	height int
	status string

	// last clicked point, reused when the level changes
	cx, cy int
}

func newGame(board *Board, cfg RunConfig) *game {
	size := board.Root().Size()
	g := &game{
		board:  board,
		width:  cfg.Width,
		height: cfg.Height,
	}
	if g.width <= 0 {
		g.width = size
	}
	if g.height <= 0 {
		g.height = size + statusBarHeight
	}
	period := cfg.PulsePeriod
	if period <= 0 {
		period = defaultPulsePeriod
	}
	g.pulse = NewHighlightPulse(period)
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pulse.Update(float32(1.0 / float64(ebiten.TPS())))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.selectAt(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.stepLevel(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.stepLevel(1)
	}
	for _, m := range pressedMoves(inpututil.IsKeyJustPressed) {
		if err := g.apply(m); err != nil {
			return err
		}
	}
	return nil
}

// pressedMoves returns the moves whose keys report pressed, in moveKeys
// order.
func pressedMoves(pressed func(ebiten.Key) bool) []Move {
	var moves []Move
	for _, key := range moveKeys {
		if pressed(key) {
			moves = append(moves, keyMoves[key])
		}
	}
	return moves
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff})
	DrawCommands(screen, g.board.Root().BlocksToDraw())
	if sel := g.board.Selected(); sel != nil {
		DrawCommands(screen, []DrawCommand{g.pulse.Apply(sel.HighlightedFrame())})
	}
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 4, g.board.Root().Size()+4)
	if g.board.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// selectAt selects the block under (x, y) at the current level. Clicks
// outside the board clear the selection.
func (g *game) selectAt(x, y int) {
	g.cx, g.cy = x, y
	if _, err := g.board.Select(x, y, g.level); err != nil {
		g.status = err.Error()
	}
}

// stepLevel moves the selection level by delta, clamped to the tree depth,
// and reselects at the last clicked point.
func (g *game) stepLevel(delta int) {
	g.level = min(max(g.level+delta, 0), g.board.Root().MaxDepth())
	if g.board.Selected() != nil {
		g.selectAt(g.cx, g.cy)
	}
}

// apply performs m on the current selection. Without a selection it does
// nothing.
func (g *game) apply(m Move) error {
	sel := g.board.Selected()
	if sel == nil {
		return nil
	}
	m.X, m.Y = sel.Position()
	m.Level = sel.Level()
	applied, err := g.board.Apply(m)
	if err != nil {
		return err
	}
	if !applied {
		g.status = fmt.Sprintf("cannot %s this block", m.Kind)
	} else {
		g.status = ""
	}
	return nil
}

func (g *game) statusLine() string {
	line := fmt.Sprintf("level %d | moves %d | score %d", g.level, g.board.Moves(), g.board.Score())
	if goal := g.board.Goal(); goal != nil {
		line = goal.Description() + "\n" + line
	}
	if g.status != "" {
		line += " | " + g.status
	}
	return line
}
