package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestInitialRecordEncoding(t *testing.T) {
	data, err := InitialRecord(config.DifficultyMedium).Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	expected := `{"score":0,"difficulty":"Medium","apple":{"x":14,"y":9},` +
		`"snake":{"body":[{"x":4,"y":9},{"x":3,"y":9},{"x":2,"y":9}]}}`
	if string(data) != expected {
		t.Errorf("Encode() = %s\nexpected  %s", data, expected)
	}
}

func TestInitialRecordFor(t *testing.T) {
	if got, want := InitialRecordFor(config.DifficultyHard, 20), InitialRecord(config.DifficultyHard); !equalRecords(got, want) {
		t.Errorf("InitialRecordFor(20) = %+v, expected %+v", got, want)
	}

	for size := config.MinBoardSize; size <= config.MaxBoardSize; size++ {
		rec := InitialRecordFor(config.DifficultyEasy, size)
		if _, _, err := NewSimFromRecord(rec, size, rand.New(rand.NewSource(1))); err != nil {
			t.Errorf("size %d: new-game record invalid: %v", size, err)
		}
	}
}

func equalRecords(a, b Record) bool {
	if a.Score != b.Score || a.Difficulty != b.Difficulty || a.Apple != b.Apple {
		return false
	}
	if len(a.Snake.Body) != len(b.Snake.Body) {
		return false
	}
	for i := range a.Snake.Body {
		if a.Snake.Body[i] != b.Snake.Body[i] {
			return false
		}
	}
	return true
}

func TestRecordRoundTrip(t *testing.T) {
	sim := newTestSim(t, InitialBody, core.DirRight, core.Pt(5, 9))
	sim.Step() // eat
	sim.Snake().TryQueueDirection(core.DirUp)
	sim.Step()

	rec := sim.Record(config.DifficultyStupidHard)
	data, err := rec.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	decoded, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("DecodeRecord() failed: %v", err)
	}

	restored, d, err := NewSimFromRecord(decoded, core.DefaultBoardSize, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("NewSimFromRecord() failed: %v", err)
	}

	if d != config.DifficultyStupidHard {
		t.Errorf("difficulty = %v, expected Stupid_Hard", d)
	}
	if restored.Interval() != config.DifficultyStupidHard.Interval() {
		t.Errorf("Interval() = %v, expected %v", restored.Interval(), config.DifficultyStupidHard.Interval())
	}
	if !equalCells(restored.Snake().Body(), sim.Snake().Body()) {
		t.Errorf("body = %v, expected %v", restored.Snake().Body(), sim.Snake().Body())
	}
	if restored.Score() != sim.Score() {
		t.Errorf("Score() = %d, expected %d", restored.Score(), sim.Score())
	}
	if restored.Apple().Pos() != sim.Apple().Pos() {
		t.Errorf("apple = %v, expected %v", restored.Apple().Pos(), sim.Apple().Pos())
	}
	if restored.Snake().Velocity() != core.DirNone {
		t.Error("restored snake should be parked")
	}
}

func TestNewSimFromRecordRejects(t *testing.T) {
	valid := func() Record { return InitialRecord(config.DifficultyMedium) }

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"unknown difficulty", func(r *Record) { r.Difficulty = "Nightmare" }},
		{"negative score", func(r *Record) { r.Score = -1 }},
		{"empty body", func(r *Record) { r.Snake.Body = nil }},
		{"gap in body", func(r *Record) { r.Snake.Body[1] = Cell{X: 9, Y: 9} }},
		{"body off board", func(r *Record) { r.Snake.Body = []Cell{{X: 20, Y: 0}} }},
		{"apple off board", func(r *Record) { r.Apple = Cell{X: -1, Y: 3} }},
		{"apple on snake", func(r *Record) { r.Apple = Cell{X: 3, Y: 9} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := valid()
			tc.mutate(&rec)
			_, _, err := NewSimFromRecord(rec, core.DefaultBoardSize, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("error = %v, expected ErrInvalidRecord", err)
			}
		})
	}
}

func TestNewSimFromRecordBodyError(t *testing.T) {
	rec := InitialRecord(config.DifficultyMedium)
	rec.Snake.Body = nil
	_, _, err := NewSimFromRecord(rec, core.DefaultBoardSize, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidBody) {
		t.Errorf("error = %v, expected to wrap ErrInvalidBody", err)
	}
}

func TestDecodeRecord(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"score":7,"difficulty":"hard","apple":{"x":1,"y":2},"snake":{"body":[{"x":3,"y":3}]}}`))
	if err != nil {
		t.Fatalf("DecodeRecord() failed: %v", err)
	}
	if rec.Score != 7 || rec.Apple != (Cell{X: 1, Y: 2}) || len(rec.Snake.Body) != 1 {
		t.Errorf("DecodeRecord() = %+v", rec)
	}

	// Difficulty spelling is normalized when the sim is built.
	_, d, err := NewSimFromRecord(rec, core.DefaultBoardSize, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSimFromRecord() failed: %v", err)
	}
	if d != config.DifficultyHard {
		t.Errorf("difficulty = %v, expected Hard", d)
	}

	if _, err := DecodeRecord([]byte("{not json")); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("error = %v, expected ErrInvalidRecord", err)
	}
}
