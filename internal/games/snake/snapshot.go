package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning     GameStateType = "running"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Score     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	BoardW    int
	BoardH    int
	Particles int
	State     GameStateType
	Cause     Cause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case !g.running:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	headX, headY := 0, 0
	if len(g.body) > 0 {
		headX = g.body[0].X
		headY = g.body[0].Y
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		SnakeLen:  len(g.body),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       g.direction,
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		BoardW:    g.board.W,
		BoardH:    g.board.H,
		Particles: g.particles.Len(),
		State:     state,
		Cause:     g.cause,
	}
}
