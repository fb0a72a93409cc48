// Package snake implements the neon Snake game: a fixed-tick grid simulation
// with particle and glow effects drawn into a core.Screen.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/effects"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Cause records why a session ended.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)

// Layout constants in terminal cells.
const (
	hudHeight = 1 // Score line above the board
	cellWidth = 2 // Columns per board cell, so cells look square
	border    = 1
)

// Game implements the Snake game.
type Game struct {
	cfg   config.SnakeConfig
	theme theme.Theme

	rng   *rand.Rand
	tick  uint64
	score int

	// Snake state
	body      []core.Point // Head at index 0; capacity fixed to the board area
	vacated   core.Point   // Cell the tail left on the last move
	direction Direction
	nextDir   Direction // Buffered direction for next move
	running   bool
	cause     Cause

	// Board state, in grid units
	board core.Rect
	food  core.Point

	// Effects
	particles *effects.System
	glow      effects.Glow
	pulse     effects.Pulse

	// Screen layout
	screenW    int
	screenH    int
	offsetX    int // Screen column of board cell (0, 0)
	offsetY    int // Screen row of board cell (0, 0)
	tooSmall   bool
	background [][]core.Color // Gradient per screen cell of the board area
}

// New creates a Snake game with the given settings and palette.
// Call Reset before stepping it.
func New(cfg config.SnakeConfig, th theme.Theme) *Game {
	return &Game{
		cfg:   cfg,
		theme: th,
		particles: effects.NewSystem(effects.Settings{
			Decay:    cfg.Particles.Decay,
			MinAlpha: cfg.Particles.MinAlpha,
			Spread:   cfg.Particles.Spread,
			MinSize:  cfg.Particles.MinSize,
			MaxSize:  cfg.Particles.MaxSize,
		}),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the game for the given screen and seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.layout()
	g.restart()
}

// Resize adapts the layout to a new screen. A board with a fixed size keeps
// the session; a fitted board that changes size starts over if the session
// is still running.
func (g *Game) Resize(w, h int) {
	prev := g.board
	g.screenW = w
	g.screenH = h
	g.layout()

	// A finished session keeps its score view until the restart key.
	if g.running && (g.board.W != prev.W || g.board.H != prev.H) {
		g.restart()
	}
}

// layout sizes the board and positions it on screen.
func (g *Game) layout() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if w == 0 {
		w = (g.screenW - 2*border) / cellWidth
	}
	if h == 0 {
		h = g.screenH - hudHeight - 2*border
	}
	// A fitted board still has to hold the initial snake
	w = max(w, g.cfg.Snake.InitialLength, 1)
	h = max(h, 1)
	g.board = core.NewRect(0, 0, w, h)

	requiredW := w*cellWidth + 2*border
	requiredH := h + hudHeight + 2*border
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH

	g.offsetX = (g.screenW-w*cellWidth)/2
	g.offsetY = hudHeight + border

	// Diagonal gradient from the top-left to the bottom-right corner
	cols, rows := w*cellWidth, h
	span := float64(max(cols-1+rows-1, 1))
	g.background = make([][]core.Color, rows)
	for y := range rows {
		g.background[y] = make([]core.Color, cols)
		for x := range cols {
			t := float64(x+y) / span
			g.background[y][x] = effects.Gradient(g.theme.BackgroundFrom, g.theme.BackgroundTo, t)
		}
	}
}

// restart puts the session back to its initial state.
func (g *Game) restart() {
	g.score = 0
	g.cause = CauseNone
	g.running = true

	// Initial snake: horizontal on the middle row, head on the right
	length := g.cfg.Snake.InitialLength
	row := g.board.H / 2
	g.body = make([]core.Point, 0, g.board.Area())
	for i := range length {
		g.body = append(g.body, core.Point{X: length - 1 - i, Y: row})
	}
	g.vacated = g.body[len(g.body)-1]
	g.direction = DirRight
	g.nextDir = DirRight

	g.particles.Clear()
	g.glow = effects.NewGlow(g.cfg.Animation.GlowStep)
	g.pulse = effects.NewPulse(g.cfg.Animation.PulseStep, g.cfg.Animation.PulseAmplitude)

	g.spawnFood()
}

// spawnFood places food at a random cell.
func (g *Game) spawnFood() {
	if !g.cfg.Food.AvoidSnake {
		g.food = core.Point{X: g.rng.Intn(g.board.W), Y: g.rng.Intn(g.board.H)}
		return
	}

	// Collect all empty cells
	var emptyCells []core.Point
	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// The snake covers the whole board
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if !g.running {
		if input.Has(core.ActionRestart) {
			g.restart()
			return g.result(core.Event{Kind: core.EventRestart, Length: len(g.body)})
		}
		return g.result()
	}

	if g.tooSmall {
		return g.result()
	}

	g.processInput(input)
	g.move()

	var events []core.Event
	if g.body[0] == g.food {
		g.eat()
		events = append(events, core.Event{Kind: core.EventFoodEaten, Score: g.score, Length: len(g.body)})
	}
	if cause := g.collision(); cause != CauseNone {
		g.running = false
		g.cause = cause
		events = append(events, core.Event{Kind: core.EventGameOver, Score: g.score, Length: len(g.body), Cause: string(cause)})
	}

	g.particles.Update()
	g.glow.Step()
	g.pulse.Step()

	return g.result(events...)
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// processInput applies the frame's direction presses in the order they
// arrived. Each press is checked against the direction of the last move, so
// the last non-reversing press wins.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Presses {
		dir, ok := actionDirection(a)
		if !ok {
			continue
		}
		// Prevent instant reversal
		if dir != g.direction.Opposite() {
			g.nextDir = dir
		}
	}
}

// actionDirection maps a steering action to its direction.
func actionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// move shifts every segment into its predecessor's cell and advances the head.
func (g *Game) move() {
	g.direction = g.nextDir

	n := len(g.body)
	g.vacated = g.body[n-1]
	copy(g.body[1:], g.body[:n-1])
	g.body[0] = g.body[0].Add(g.direction.Delta())
}

// eat grows the snake into the cell its tail just left and relocates the food.
func (g *Game) eat() {
	if len(g.body) < cap(g.body) {
		g.body = append(g.body, g.vacated)
	}
	g.score++

	g.particles.Burst(float64(g.food.X)+0.5, float64(g.food.Y)+0.5, g.cfg.Particles.Burst, g.rng)
	g.spawnFood()
}

// collision reports whether the head left the board or hit the body.
func (g *Game) collision() Cause {
	head := g.body[0]
	if !g.board.ContainsPoint(head) {
		return CauseWall
	}
	for _, seg := range g.body[1:] {
		if seg == head {
			return CauseSelf
		}
	}
	return CauseNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: !g.running,
	}
}

// Body returns a copy of the snake's segments, head first.
func (g *Game) Body() []core.Point {
	return append([]core.Point(nil), g.body...)
}

// --- Direction helpers ---

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
