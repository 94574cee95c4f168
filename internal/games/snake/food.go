package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is a single cell the snake can eat.
type Food struct {
	position core.Point
}

// NewFood places food at p.
func NewFood(p core.Point) *Food {
	return &Food{position: p}
}

// Position returns the food cell.
func (f *Food) Position() core.Point {
	return f.position
}

// IsEaten reports whether the snake's head is on the food.
func (f *Food) IsEaten(s *Snake) bool {
	return f.position == s.Head()
}

// Relocate moves the food to a uniformly random cell of the grid.
// Cells under the snake are not excluded.
func (f *Food) Relocate(bounds core.Bounds, rng *rand.Rand) {
	f.position = core.Point{
		X: rng.Intn(bounds.Width),
		Y: rng.Intn(bounds.Height),
	}
}
