// Package snake implements the snake simulator and the game controller that
// wraps it with menus, pause handling and save records.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidBody is returned when a snake body cannot exist on the board.
var ErrInvalidBody = errors.New("snake: invalid body")

// maxPending is how many direction changes may be buffered ahead of a tick.
const maxPending = 2

// Snake is an ordered list of cells, head first, plus its movement state.
type Snake struct {
	body     []core.Point
	velocity core.Direction
	pending  []core.Direction
	dying    bool
}

// NewSnake validates body against a size×size board and returns a resting
// snake. body[0] is the head.
func NewSnake(body []core.Point, size int) (*Snake, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidBody)
	}

	seen := make(map[core.Point]bool, len(body))
	for i, p := range body {
		if !p.In(size) {
			return nil, fmt.Errorf("%w: cell %v outside %dx%d board", ErrInvalidBody, p, size, size)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: duplicate cell %v", ErrInvalidBody, p)
		}
		seen[p] = true
		if i > 0 && core.DirectionFromVector(body[i-1].Sub(p)) == core.DirNone {
			return nil, fmt.Errorf("%w: cell %v not adjacent to %v", ErrInvalidBody, p, body[i-1])
		}
	}

	return &Snake{
		body:    append([]core.Point(nil), body...),
		pending: make([]core.Direction, 0, maxPending),
	}, nil
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns a copy of every cell behind the head.
func (s *Snake) Tail() []core.Point {
	return append([]core.Point(nil), s.body[1:]...)
}

// Body returns a copy of all cells, head first.
func (s *Snake) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Len returns the number of cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Velocity returns the direction applied on the last tick.
func (s *Snake) Velocity() core.Direction {
	return s.velocity
}

// Dying reports whether the previous tick collided.
func (s *Snake) Dying() bool {
	return s.dying
}

// Occupies reports whether p is one of the snake's cells.
func (s *Snake) Occupies(p core.Point) bool {
	for _, c := range s.body {
		if c == p {
			return true
		}
	}
	return false
}

// implied is the direction the body already points in: head minus neck.
func (s *Snake) implied() core.Direction {
	if len(s.body) < 2 {
		return core.DirNone
	}
	return core.DirectionFromVector(s.body[0].Sub(s.body[1]))
}

// move shifts every cell one slot toward the tail and puts the head one step
// along the velocity. It returns the body before the move and the cell the
// tail tip left behind.
func (s *Snake) move() (prev []core.Point, vacated core.Point) {
	prev = s.Body()
	vacated = s.body[len(s.body)-1]
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Add(s.velocity.Vector())
	return prev, vacated
}

// collides reports whether the head left the board or hit the tail.
func (s *Snake) collides(size int) bool {
	head := s.body[0]
	if !head.In(size) {
		return true
	}
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// grow appends a cell at the tail end.
func (s *Snake) grow(at core.Point) {
	s.body = append(s.body, at)
}
