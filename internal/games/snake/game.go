// Package snake implements the snake simulation: the snake and food entities
// and the controller that advances them one fixed step per update tick.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Kind tags a successful tick.
type Kind int

const (
	Moved Kind = iota
	Ate
)

func (k Kind) String() string {
	switch k {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	default:
		return "unknown"
	}
}

// SpeedAdjustment asks the driver to change its update rate by Delta ticks per second.
type SpeedAdjustment struct {
	Delta int
}

// IsZero reports whether the adjustment leaves the rate alone.
func (a SpeedAdjustment) IsZero() bool {
	return a.Delta == 0
}

// Outcome is the result of one successful tick.
type Outcome struct {
	Kind  Kind
	Speed SpeedAdjustment
}

// Phase is the controller state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseOver
)

func (p Phase) String() string {
	if p == PhaseOver {
		return "over"
	}
	return "running"
}

// Game owns the snake, the food and the grid for one session.
// It is not safe for concurrent use; the driver calls it from one goroutine.
type Game struct {
	bounds    core.Bounds
	speedStep int
	rng       *rand.Rand

	snake *Snake
	food  *Food

	phase Phase
	tick  uint64
	eaten int
	err   error // terminal failure, set once
}

// New starts a session from a resolved config. The seed drives food placement.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		bounds:    cfg.Bounds(),
		speedStep: cfg.Speed.Step,
		rng:       rand.New(rand.NewSource(seed)),
		snake:     NewSnake(cfg.Head(), cfg.Snake.Size, cfg.Direction()),
		food:      NewFood(cfg.InitialFood()),
	}
	if !g.bounds.Contains(g.food.Position()) {
		g.food.Relocate(g.bounds, g.rng)
	}
	return g
}

// Update runs one simulation tick.
// If the food is under the head it is relocated and the snake grows; otherwise
// the snake just moves. A wall hit ends the session: the error is returned now
// and on every later call.
func (g *Game) Update() (Outcome, error) {
	if g.phase == PhaseOver {
		return Outcome{}, g.err
	}
	g.tick++

	grow := g.food.IsEaten(g.snake)
	if grow {
		g.food.Relocate(g.bounds, g.rng)
	}

	out, err := g.snake.Advance(g.bounds, grow)
	if err != nil {
		g.phase = PhaseOver
		g.err = err
		return Outcome{}, err
	}

	if out.Kind == Ate {
		g.eaten++
		out.Speed = SpeedAdjustment{Delta: g.speedStep}
	}
	return out, nil
}

// ApplyInput steers the snake for directional actions and ignores the rest.
// Reversing straight back is refused by the snake.
func (g *Game) ApplyInput(a core.Action) {
	if g.phase == PhaseOver {
		return
	}
	if dir, ok := a.Direction(); ok {
		g.snake.SetDirection(dir)
	}
}

// Bounds returns the grid size.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Phase returns the controller state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Err returns the terminal failure, or nil while running.
func (g *Game) Err() error {
	return g.err
}

// Body returns a copy of the snake body, head first.
func (g *Game) Body() []core.Point {
	return g.snake.Body()
}

// Direction returns the snake's heading.
func (g *Game) Direction() core.Direction {
	return g.snake.Direction()
}

// FoodPosition returns the food cell.
func (g *Game) FoodPosition() core.Point {
	return g.food.Position()
}

// State returns the summary the driver reads after each tick.
func (g *Game) State() core.GameState {
	return core.GameState{
		Length:   g.snake.Len(),
		Eaten:    g.eaten,
		GameOver: g.phase == PhaseOver,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d phase=%s len=%d dir=%s head=%v food=%v eaten=%d",
		g.tick, g.phase, g.snake.Len(), g.snake.Direction(), g.snake.Head(), g.food.Position(), g.eaten)
}
