package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Outcome describes what a single tick did.
type Outcome int

const (
	OutcomeIdle     Outcome = iota // no tick ran, or the snake is parked
	OutcomeMoved                   // the snake advanced one cell
	OutcomeAte                     // advanced onto the apple and grew
	OutcomeCollided                // first collision; the move was reverted
	OutcomeDied                    // second consecutive collision; game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// Sim is the fixed-timestep snake simulation. It is not safe for
// concurrent use; a single frame loop owns it.
type Sim struct {
	snake    *Snake
	apple    *Apple
	score    int
	size     int
	rng      *rand.Rand
	gameOver bool
	ticks    uint64

	interval   time.Duration
	nextUpdate time.Time
	armed      bool
}

// NewSim builds a simulation over an existing snake and apple.
func NewSim(snake *Snake, apple *Apple, size int, interval time.Duration, rng *rand.Rand) *Sim {
	s := &Sim{
		snake: snake,
		apple: apple,
		size:  size,
		rng:   rng,
	}
	s.SetInterval(interval)
	return s
}

func (s *Sim) Snake() *Snake           { return s.snake }
func (s *Sim) Apple() *Apple           { return s.apple }
func (s *Sim) Score() int              { return s.score }
func (s *Sim) Size() int               { return s.size }
func (s *Sim) GameOver() bool          { return s.gameOver }
func (s *Sim) Interval() time.Duration { return s.interval }
func (s *Sim) Ticks() uint64           { return s.ticks }

// SetInterval changes the tick cadence. Non-positive values are ignored.
func (s *Sim) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Rearm makes the next Update restart the clock, so the first tick after
// a pause happens one interval after the game resumes.
func (s *Sim) Rearm() {
	s.armed = false
}

// Update is called every frame. It performs at most one Step per call and
// only once the interval has elapsed. After a stall the missed ticks are
// dropped, not replayed.
func (s *Sim) Update(now time.Time) Outcome {
	if !s.armed {
		s.armed = true
		s.nextUpdate = now.Add(s.interval)
		return OutcomeIdle
	}
	if now.Before(s.nextUpdate) {
		return OutcomeIdle
	}

	missed := now.Sub(s.nextUpdate)/s.interval + 1
	s.nextUpdate = s.nextUpdate.Add(missed * s.interval)
	return s.Step()
}

// Step performs exactly one tick regardless of the clock.
func (s *Sim) Step() Outcome {
	if s.gameOver {
		return OutcomeIdle
	}
	s.ticks++

	sn := s.snake
	sn.dequeue()
	if sn.velocity == core.DirNone {
		return OutcomeIdle
	}

	prev, vacated := sn.move()
	if sn.collides(s.size) {
		sn.body = prev
		if sn.dying {
			s.gameOver = true
			return OutcomeDied
		}
		sn.dying = true
		return OutcomeCollided
	}
	sn.dying = false

	if sn.Head() != s.apple.pos {
		return OutcomeMoved
	}
	sn.grow(vacated)
	s.apple.Place(s.rng, s.size, sn.body)
	s.score++
	return OutcomeAte
}
