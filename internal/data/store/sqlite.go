package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"graphotimer/internal/core/model"
)

// SQLiteStore persists entries in a single-table SQLite database.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and
// initializes the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		action_name TEXT NOT NULL,
		duration_minutes REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
	CREATE INDEX IF NOT EXISTS idx_entries_start ON entries(date, start_time);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *SQLiteStore) Append(entry model.Entry) error {
	query := `
	INSERT INTO entries (date, start_time, end_time, action_name, duration_minutes)
	VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.conn.Exec(query,
		entry.Date, entry.StartTime, entry.EndTime, entry.ActionName, entry.DurationMinutes)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// List returns all entries ordered by date then start time. Insertion
// order within equal start times is preserved by the rowid tiebreak,
// which keeps the normalizer's stable sort meaningful.
func (s *SQLiteStore) List() ([]model.Entry, error) {
	query := `
	SELECT date, start_time, end_time, action_name, duration_minutes
	FROM entries
	ORDER BY date, start_time, id
	`
	rows, err := s.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.Date, &e.StartTime, &e.EndTime, &e.ActionName, &e.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
