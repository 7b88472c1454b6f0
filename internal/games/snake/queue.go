package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// TryQueueDirection buffers a direction change for a later tick. It returns
// false, without side effects, for DirNone, a repeat of the last buffered
// direction, a 180° reversal of it, or when the queue is full.
func (s *Snake) TryQueueDirection(d core.Direction) bool {
	if d == core.DirNone {
		return false
	}

	last := s.velocity
	if n := len(s.pending); n > 0 {
		last = s.pending[n-1]
	}
	if d == last {
		return false
	}

	// A resting snake still points somewhere; never let it turn into its neck.
	if last == core.DirNone {
		last = s.implied()
	}
	if d.IsOpposite(last) {
		return false
	}

	if len(s.pending) >= maxPending {
		return false
	}
	s.pending = append(s.pending, d)
	return true
}

// Stop parks the snake: the queue is dropped and the velocity becomes DirNone.
func (s *Snake) Stop() {
	s.pending = s.pending[:0]
	s.velocity = core.DirNone
}

// Pending returns the buffered directions in application order.
func (s *Snake) Pending() []core.Direction {
	return append([]core.Direction(nil), s.pending...)
}

// dequeue makes the oldest buffered direction the velocity.
func (s *Snake) dequeue() {
	if len(s.pending) == 0 {
		return
	}
	s.velocity = s.pending[0]
	copy(s.pending, s.pending[1:])
	s.pending = s.pending[:len(s.pending)-1]
}
