package snake

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidRecord is returned when a save record cannot be restored.
var ErrInvalidRecord = errors.New("snake: invalid record")

// InitialBody is the snake of a new game, head first.
var InitialBody = []core.Point{core.Pt(4, 9), core.Pt(3, 9), core.Pt(2, 9)}

// Cell is a board coordinate in a saved record.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SnakeRecord holds the saved body, head first.
type SnakeRecord struct {
	Body []Cell `json:"body"`
}

// Record is the persisted state of a game in progress.
type Record struct {
	Score      int               `json:"score"`
	Difficulty config.Difficulty `json:"difficulty"`
	Apple      Cell              `json:"apple"`
	Snake      SnakeRecord       `json:"snake"`
}

func cellOf(p core.Point) Cell {
	return Cell{X: p.X, Y: p.Y}
}

func (c Cell) point() core.Point {
	return core.Pt(c.X, c.Y)
}

// InitialRecord returns the record a new game on the default board starts from.
func InitialRecord(d config.Difficulty) Record {
	rec := Record{
		Difficulty: d,
		Apple:      cellOf(DefaultApple),
	}
	for _, p := range InitialBody {
		rec.Snake.Body = append(rec.Snake.Body, cellOf(p))
	}
	return rec
}

// InitialRecordFor scales the new-game layout to a size×size board. On the
// default board it equals InitialRecord.
func InitialRecordFor(d config.Difficulty, size int) Record {
	if size == core.DefaultBoardSize {
		return InitialRecord(d)
	}
	row := size/2 - 1
	head := max(size/5, len(InitialBody)-1)
	apple := max(size*7/10, head+1)

	rec := Record{
		Difficulty: d,
		Apple:      Cell{X: apple, Y: row},
	}
	for i := range InitialBody {
		rec.Snake.Body = append(rec.Snake.Body, Cell{X: head - i, Y: row})
	}
	return rec
}

// Record captures the live state of the simulation.
func (s *Sim) Record(d config.Difficulty) Record {
	rec := Record{
		Score:      s.score,
		Difficulty: d,
		Apple:      cellOf(s.apple.pos),
	}
	for _, p := range s.snake.body {
		rec.Snake.Body = append(rec.Snake.Body, cellOf(p))
	}
	return rec
}

// NewSimFromRecord rebuilds a parked simulation from a saved record on a
// size×size board and returns it with the record's difficulty.
func NewSimFromRecord(rec Record, size int, rng *rand.Rand) (*Sim, config.Difficulty, error) {
	d, err := config.ParseDifficulty(string(rec.Difficulty))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if rec.Score < 0 {
		return nil, "", fmt.Errorf("%w: negative score %d", ErrInvalidRecord, rec.Score)
	}

	body := make([]core.Point, 0, len(rec.Snake.Body))
	for _, c := range rec.Snake.Body {
		body = append(body, c.point())
	}
	sn, err := NewSnake(body, size)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	pos := rec.Apple.point()
	if !pos.In(size) {
		return nil, "", fmt.Errorf("%w: apple %v outside %dx%d board", ErrInvalidRecord, pos, size, size)
	}
	if sn.Occupies(pos) {
		return nil, "", fmt.Errorf("%w: apple %v on the snake", ErrInvalidRecord, pos)
	}

	sim := NewSim(sn, NewApple(&pos), size, d.Interval(), rng)
	sim.score = rec.Score
	return sim, d, nil
}

// Encode serializes the record as JSON.
func (r Record) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRecord parses a JSON save record.
func DecodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return rec, nil
}
