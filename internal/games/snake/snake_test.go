package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnakeValidation(t *testing.T) {
	tests := []struct {
		name string
		body []core.Point
	}{
		{"empty", nil},
		{"outside board", []core.Point{core.Pt(20, 0)}},
		{"negative", []core.Point{core.Pt(0, 0), core.Pt(0, -1)}},
		{"duplicate", []core.Point{core.Pt(1, 1), core.Pt(2, 1), core.Pt(1, 1)}},
		{"gap", []core.Point{core.Pt(1, 1), core.Pt(3, 1)}},
		{"diagonal", []core.Point{core.Pt(1, 1), core.Pt(2, 2)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSnake(tc.body, 20)
			if !errors.Is(err, ErrInvalidBody) {
				t.Errorf("NewSnake() error = %v, expected ErrInvalidBody", err)
			}
		})
	}
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := []core.Point{core.Pt(4, 9), core.Pt(3, 9)}
	s, err := NewSnake(body, 20)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}
	body[0] = core.Pt(0, 0)
	if s.Head() != core.Pt(4, 9) {
		t.Error("snake should not alias the caller's slice")
	}

	out := s.Body()
	out[0] = core.Pt(0, 0)
	if s.Head() != core.Pt(4, 9) {
		t.Error("Body() should return a copy")
	}
}

func TestSnakeAccessors(t *testing.T) {
	s, err := NewSnake(InitialBody, 20)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
	tail := s.Tail()
	if len(tail) != 2 || tail[0] != core.Pt(3, 9) || tail[1] != core.Pt(2, 9) {
		t.Errorf("Tail() = %v", tail)
	}
	if !s.Occupies(core.Pt(2, 9)) || s.Occupies(core.Pt(5, 9)) {
		t.Error("Occupies() wrong")
	}
	if s.Velocity() != core.DirNone || s.Dying() {
		t.Error("new snake should be at rest and alive")
	}
}
