package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultApple is where the first apple of a new game sits.
var DefaultApple = core.Pt(14, 9)

// Apple is the single food cell on the board.
type Apple struct {
	pos core.Point
}

// NewApple creates an apple at pos, or at DefaultApple when pos is nil.
func NewApple(pos *core.Point) *Apple {
	if pos == nil {
		return &Apple{pos: DefaultApple}
	}
	return &Apple{pos: *pos}
}

// Pos returns the apple's cell.
func (a *Apple) Pos() core.Point {
	return a.pos
}

// Place moves the apple to a uniformly random cell of the size×size board
// that is not in occupied. It returns false, leaving the apple where it is,
// when every cell is taken.
func (a *Apple) Place(rng *rand.Rand, size int, occupied []core.Point) bool {
	taken := make(map[core.Point]bool, len(occupied))
	for _, p := range occupied {
		if p.In(size) {
			taken[p] = true
		}
	}

	free := size*size - len(taken)
	if free <= 0 {
		return false
	}

	k := rng.Intn(free)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Pt(x, y)
			if taken[p] {
				continue
			}
			if k == 0 {
				a.pos = p
				return true
			}
			k--
		}
	}
	return false
}
