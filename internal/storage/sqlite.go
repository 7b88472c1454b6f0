// Package storage provides SQLite-based persistence for saved games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Store manages the SQLite database connection for save records.
type Store struct {
	db *sql.DB
}

// SlotInfo summarizes one saved game.
type SlotInfo struct {
	Slot       string
	Score      int
	Difficulty string
	UpdatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores rec in slot, replacing any previous record.
func (s *Store) Save(slot string, rec snake.Record) error {
	data, err := rec.Encode()
	if err != nil {
		return fmt.Errorf("storage: cannot encode record: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (slot, record, score, difficulty, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   record = excluded.record,
		   score = excluded.score,
		   difficulty = excluded.difficulty,
		   updated_at = excluded.updated_at`,
		slot, string(data), rec.Score, string(rec.Difficulty),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %q: %w", slot, err)
	}
	return nil
}

// Load returns the record in slot, or nil if the slot is empty.
func (s *Store) Load(slot string) (*snake.Record, error) {
	var data string
	err := s.db.QueryRow("SELECT record FROM saves WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %q: %w", slot, err)
	}

	rec, err := snake.DecodeRecord([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("storage: slot %q: %w", slot, err)
	}
	return &rec, nil
}

// Remove deletes the record in slot. Removing an empty slot is not an error.
func (s *Store) Remove(slot string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot remove slot %q: %w", slot, err)
	}
	return nil
}

// Slots lists every saved game, most recent first.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, score, difficulty, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Score, &info.Difficulty, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Slot binds the store to one slot name so a game can save without knowing
// which player it belongs to.
func (s *Store) Slot(name string) SlotSaver {
	return SlotSaver{store: s, slot: name}
}

// SlotSaver implements snake.Saver for a single slot.
type SlotSaver struct {
	store *Store
	slot  string
}

// Name returns the slot name.
func (ss SlotSaver) Name() string { return ss.slot }

func (ss SlotSaver) Save(rec snake.Record) error  { return ss.store.Save(ss.slot, rec) }
func (ss SlotSaver) Load() (*snake.Record, error) { return ss.store.Load(ss.slot) }
func (ss SlotSaver) Remove() error                { return ss.store.Remove(ss.slot) }

var _ snake.Saver = SlotSaver{}
