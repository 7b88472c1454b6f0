package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const testInterval = 200 * time.Millisecond

func newTestSim(t *testing.T, body []core.Point, v core.Direction, apple core.Point) *Sim {
	t.Helper()
	sn := newTestSnake(t, body, v)
	return NewSim(sn, NewApple(&apple), core.DefaultBoardSize, testInterval, rand.New(rand.NewSource(1)))
}

func equalCells(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasDuplicates(cells []core.Point) bool {
	seen := make(map[core.Point]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

func TestEatScenario(t *testing.T) {
	sim := newTestSim(t, InitialBody, core.DirRight, core.Pt(5, 9))

	if out := sim.Step(); out != OutcomeAte {
		t.Fatalf("Step() = %v, expected ate", out)
	}

	expected := []core.Point{core.Pt(5, 9), core.Pt(4, 9), core.Pt(3, 9), core.Pt(2, 9)}
	if body := sim.Snake().Body(); !equalCells(body, expected) {
		t.Errorf("Body() = %v, expected %v", body, expected)
	}
	if sim.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", sim.Score())
	}
	apple := sim.Apple().Pos()
	if !apple.In(core.DefaultBoardSize) || sim.Snake().Occupies(apple) {
		t.Errorf("apple re-placed onto invalid cell %v", apple)
	}
}

func TestBoundaryGrace(t *testing.T) {
	body := []core.Point{core.Pt(0, 9), core.Pt(1, 9), core.Pt(2, 9)}
	sim := newTestSim(t, body, core.DirLeft, core.Pt(14, 9))

	if out := sim.Step(); out != OutcomeCollided {
		t.Fatalf("first Step() = %v, expected collided", out)
	}
	if !sim.Snake().Dying() {
		t.Error("snake should be dying after the first collision")
	}
	if sim.GameOver() {
		t.Error("a single collision must not end the game")
	}
	if got := sim.Snake().Body(); !equalCells(got, body) {
		t.Errorf("move not reverted: %v", got)
	}

	if out := sim.Step(); out != OutcomeDied {
		t.Fatalf("second Step() = %v, expected died", out)
	}
	if !sim.GameOver() {
		t.Error("second consecutive collision should end the game")
	}
	if got := sim.Snake().Body(); !equalCells(got, body) {
		t.Errorf("snake should freeze at its last valid cells, got %v", got)
	}

	if out := sim.Step(); out != OutcomeIdle {
		t.Errorf("Step() after game over = %v, expected idle", out)
	}
}

func TestGraceWindowRecovers(t *testing.T) {
	body := []core.Point{core.Pt(0, 9), core.Pt(1, 9), core.Pt(2, 9)}
	sim := newTestSim(t, body, core.DirLeft, core.Pt(14, 9))

	if out := sim.Step(); out != OutcomeCollided {
		t.Fatalf("Step() = %v, expected collided", out)
	}
	if !sim.Snake().TryQueueDirection(core.DirUp) {
		t.Fatal("turn during grace window rejected")
	}
	if out := sim.Step(); out != OutcomeMoved {
		t.Fatalf("Step() = %v, expected moved", out)
	}
	if sim.Snake().Dying() {
		t.Error("dying should clear after a clean move")
	}
	if sim.GameOver() {
		t.Error("isolated collision ended the game")
	}
	if sim.Snake().Head() != core.Pt(0, 8) {
		t.Errorf("Head() = %v, expected (0,8)", sim.Snake().Head())
	}
}

func TestSelfCollision(t *testing.T) {
	body := []core.Point{core.Pt(2, 2), core.Pt(3, 2), core.Pt(3, 3), core.Pt(2, 3), core.Pt(1, 3)}
	sim := newTestSim(t, body, core.DirDown, core.Pt(14, 9))

	if out := sim.Step(); out != OutcomeCollided {
		t.Fatalf("Step() = %v, expected collided", out)
	}
	if got := sim.Snake().Body(); !equalCells(got, body) {
		t.Errorf("move not reverted: %v", got)
	}
}

func TestChaseTail(t *testing.T) {
	// The tail tip moves away in the same tick, so its cell is free.
	body := []core.Point{core.Pt(1, 1), core.Pt(2, 1), core.Pt(2, 2), core.Pt(1, 2)}
	sim := newTestSim(t, body, core.DirDown, core.Pt(14, 9))

	if out := sim.Step(); out != OutcomeMoved {
		t.Fatalf("Step() = %v, expected moved", out)
	}
	expected := []core.Point{core.Pt(1, 2), core.Pt(1, 1), core.Pt(2, 1), core.Pt(2, 2)}
	if got := sim.Snake().Body(); !equalCells(got, expected) {
		t.Errorf("Body() = %v, expected %v", got, expected)
	}
}

func TestIdleSnakeDoesNotMove(t *testing.T) {
	sim := newTestSim(t, InitialBody, core.DirNone, core.Pt(14, 9))
	if out := sim.Step(); out != OutcomeIdle {
		t.Errorf("Step() = %v, expected idle", out)
	}
	if !equalCells(sim.Snake().Body(), InitialBody) {
		t.Error("idle snake moved")
	}
}

func TestUpdateCadence(t *testing.T) {
	sim := newTestSim(t, InitialBody, core.DirRight, core.Pt(14, 9))
	t0 := time.Unix(1000, 0)

	if out := sim.Update(t0); out != OutcomeIdle {
		t.Errorf("first Update() = %v, expected idle", out)
	}
	if out := sim.Update(t0.Add(testInterval - time.Millisecond)); out != OutcomeIdle {
		t.Errorf("early Update() = %v, expected idle", out)
	}
	if out := sim.Update(t0.Add(testInterval)); out != OutcomeMoved {
		t.Errorf("Update() at interval = %v, expected moved", out)
	}
	if sim.Snake().Head() != core.Pt(5, 9) {
		t.Errorf("Head() = %v, expected (5,9)", sim.Snake().Head())
	}

	// A stall of several intervals still moves one cell.
	if out := sim.Update(t0.Add(testInterval * 11 / 2)); out != OutcomeMoved {
		t.Errorf("Update() after stall = %v, expected moved", out)
	}
	if sim.Snake().Head() != core.Pt(6, 9) {
		t.Errorf("Head() = %v, expected (6,9) after dropping frames", sim.Snake().Head())
	}
	if out := sim.Update(t0.Add(testInterval * 59 / 10)); out != OutcomeIdle {
		t.Errorf("Update() before next slot = %v, expected idle", out)
	}
	if out := sim.Update(t0.Add(testInterval * 6)); out != OutcomeMoved {
		t.Errorf("Update() at next slot = %v, expected moved", out)
	}
}

func TestRearm(t *testing.T) {
	sim := newTestSim(t, InitialBody, core.DirRight, core.Pt(14, 9))
	t0 := time.Unix(1000, 0)
	sim.Update(t0)

	sim.Rearm()
	later := t0.Add(time.Hour)
	if out := sim.Update(later); out != OutcomeIdle {
		t.Errorf("Update() after Rearm = %v, expected idle", out)
	}
	if out := sim.Update(later.Add(testInterval)); out != OutcomeMoved {
		t.Errorf("Update() one interval after Rearm = %v, expected moved", out)
	}
}

func TestSetInterval(t *testing.T) {
	sim := newTestSim(t, InitialBody, core.DirRight, core.Pt(14, 9))
	sim.SetInterval(50 * time.Millisecond)
	if sim.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v", sim.Interval())
	}
	sim.SetInterval(0)
	if sim.Interval() != 50*time.Millisecond {
		t.Error("non-positive interval should be ignored")
	}
}

// Random play on a small board checks the per-tick movement rules.
func TestRandomPlayInvariants(t *testing.T) {
	const size = 8

	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		sn, err := NewSnake([]core.Point{core.Pt(3, 4), core.Pt(2, 4), core.Pt(1, 4)}, size)
		if err != nil {
			t.Fatal(err)
		}
		sim := NewSim(sn, NewApple(&core.Point{X: 6, Y: 4}), size, testInterval, rng)

		for tick := 0; tick < 400 && !sim.GameOver(); tick++ {
			if rng.Intn(3) == 0 {
				sn.TryQueueDirection(core.Cardinals[rng.Intn(4)])
			}

			before := sn.Body()
			var next core.Direction
			if p := sn.Pending(); len(p) > 0 {
				next = p[0]
			} else {
				next = sn.Velocity()
			}

			out := sim.Step()
			after := sn.Body()

			if hasDuplicates(after) {
				t.Fatalf("seed %d tick %d: duplicate cells %v", seed, tick, after)
			}
			if sim.Snake().Occupies(sim.Apple().Pos()) && len(after) < size*size {
				t.Fatalf("seed %d tick %d: apple %v on snake", seed, tick, sim.Apple().Pos())
			}

			switch out {
			case OutcomeMoved, OutcomeAte:
				if after[0] != before[0].Add(next.Vector()) {
					t.Fatalf("seed %d tick %d: head %v, expected %v+%v", seed, tick, after[0], before[0], next)
				}
				grow := 0
				if out == OutcomeAte {
					grow = 1
				}
				if len(after) != len(before)+grow {
					t.Fatalf("seed %d tick %d: length %d -> %d on %v", seed, tick, len(before), len(after), out)
				}
			case OutcomeCollided, OutcomeDied, OutcomeIdle:
				if !equalCells(before, after) {
					t.Fatalf("seed %d tick %d: body changed on %v", seed, tick, out)
				}
			}
		}
	}
}
