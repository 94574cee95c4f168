package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered body of cells, head first, plus a heading.
// The body is used as a deque: heads are pushed at index 0, tails popped from the end.
type Snake struct {
	body      []core.Point
	direction core.Direction // heading of the last move
	nextDir   core.Direction // applied on the next Advance
}

// NewSnake builds a snake of size cells with its head at head, trailing away
// from dir. Size is clamped to at least one cell.
func NewSnake(head core.Point, size int, dir core.Direction) *Snake {
	size = max(size, 1)
	body := make([]core.Point, size)
	back := dir.Opposite()
	p := head
	for i := range body {
		body[i] = p
		p = p.Step(back)
	}
	return &Snake{body: body, direction: dir, nextDir: dir}
}

// newSnakeFromBody builds a snake with an explicit body, head first.
func newSnakeFromBody(body []core.Point, dir core.Direction) *Snake {
	return &Snake{body: append([]core.Point(nil), body...), direction: dir, nextDir: dir}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Len returns the number of cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the heading the next move will take.
func (s *Snake) Direction() core.Direction {
	return s.nextDir
}

// SetDirection queues a turn for the next move. A request that reverses the
// heading of the last move is dropped, so several turns between two ticks
// can never fold the head back onto the neck.
func (s *Snake) SetDirection(d core.Direction) {
	if s.direction.IsOpposite(d) {
		return
	}
	s.nextDir = d
}

// Advance moves the head one cell along the current heading.
// If the new head would leave the grid, a *CollisionError is returned and the
// snake is left untouched. Otherwise the tail is dropped unless grow is set.
// The body itself is not checked: the snake may cross over itself.
func (s *Snake) Advance(bounds core.Bounds, grow bool) (Outcome, error) {
	head := s.Head()
	next := head.Step(s.nextDir)
	if !bounds.Contains(next) {
		return Outcome{}, &CollisionError{Head: head, Direction: s.nextDir, Bounds: bounds}
	}
	s.direction = s.nextDir

	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	if grow {
		return Outcome{Kind: Ate}, nil
	}

	s.body = s.body[:len(s.body)-1]
	return Outcome{Kind: Moved}, nil
}
