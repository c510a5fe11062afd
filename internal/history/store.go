// Package history persists committed date ranges so recent selections
// can be offered back as shortcuts.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	_ "modernc.org/sqlite"

	"stint/internal/daterange"
	"stint/internal/logger"
	"stint/internal/perf"
)

const schema = `
CREATE TABLE IF NOT EXISTS selections (
    id TEXT PRIMARY KEY,
    start_date TEXT,
    end_date TEXT,
    picked_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_selections_picked_at ON selections(picked_at);
`

// Entry is one recorded selection.
type Entry struct {
	ID       string
	Range    daterange.Range
	PickedAt time.Time
}

// Store is a sqlite-backed log of picked ranges.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path and initializes the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a picked range. Half-open ranges store a NULL for the
// missing side; ranges with no set boundary are not recorded.
func (s *Store) Save(r daterange.Range) (Entry, error) {
	timer := perf.NewTimer("history.Save", logger.GetLogger(), 100)
	defer timer.Stop()

	if !r.Start.IsValid() && !r.End.IsValid() {
		return Entry{}, fmt.Errorf("refusing to record a range with no set boundary")
	}

	e := Entry{
		ID:       xid.New().String(),
		Range:    r,
		PickedAt: time.Now(),
	}
	_, err := s.db.Exec(
		"INSERT INTO selections (id, start_date, end_date, picked_at) VALUES (?, ?, ?, ?)",
		e.ID, boundaryColumn(r.Start), boundaryColumn(r.End), e.PickedAt.Unix(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to record selection: %w", err)
	}
	return e, nil
}

// Recent returns up to n selections, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	timer := perf.NewTimer("history.Recent", logger.GetLogger(), 100)
	defer timer.Stop()

	rows, err := s.db.Query(
		"SELECT id, start_date, end_date, picked_at FROM selections ORDER BY picked_at DESC, id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			start, end sql.NullString
			pickedAt   int64
		)
		if err := rows.Scan(&e.ID, &start, &end, &pickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		e.Range.Start = boundaryValue(start)
		e.Range.End = boundaryValue(end)
		e.PickedAt = time.Unix(pickedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all recorded selections.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM selections"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// boundaryColumn maps a boundary value to its column representation.
func boundaryColumn(d daterange.Date) any {
	if t, ok := d.Time(); ok {
		return t.Format("2006-01-02")
	}
	return nil
}

// boundaryValue maps a column back to a boundary value.
func boundaryValue(col sql.NullString) daterange.Date {
	if !col.Valid {
		return daterange.Unset()
	}
	t, err := time.Parse("2006-01-02", col.String)
	if err != nil {
		return daterange.Invalid()
	}
	return daterange.On(t)
}
