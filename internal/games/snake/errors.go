package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGameOver is the terminal failure of a session. Every collision matches it.
var ErrGameOver = errors.New("game over")

// CollisionError is returned when the snake would move off the grid.
type CollisionError struct {
	Head      core.Point     // head before the failed move
	Direction core.Direction // heading that hit the wall
	Bounds    core.Bounds
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("snake: hit the wall moving %s from %v on a %dx%d grid",
		e.Direction, e.Head, e.Bounds.Width, e.Bounds.Height)
}

// Is makes errors.Is(err, ErrGameOver) hold for collisions.
func (e *CollisionError) Is(target error) bool {
	return target == ErrGameOver
}
