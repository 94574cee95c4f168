package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Len   int
	Head  core.Point
	Tail  core.Point
	Dir   core.Direction
	Food  core.Point
	Eaten int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Phase: g.phase,
		Len:   g.snake.Len(),
		Head:  g.snake.Head(),
		Tail:  g.snake.body[len(g.snake.body)-1],
		Dir:   g.snake.Direction(),
		Food:  g.food.Position(),
		Eaten: g.eaten,
	}
}
