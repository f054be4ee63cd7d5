// Package storage keeps the session journal: every game event of a run,
// recorded in SQLite through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/froggit/internal/core"
)

// MemoryPath opens a journal that lives only as long as the process.
const MemoryPath = ":memory:"

// Journal records game events of one session.
type Journal struct {
	db   *sql.DB
	path string
}

// Entry is a single recorded event.
type Entry struct {
	ID        int64
	Tick      uint64
	Kind      core.EventKind
	Cause     string
	Row       int
	Col       int
	Lives     int
	CreatedAt time.Time
}

// Summary aggregates a session.
type Summary struct {
	Events        int
	Hops          int
	Deaths        int
	DeathsByCause map[string]int
	Captures      int
	Continues     int
	Starts        int
	Won           bool
	Lost          bool
	LastTick      uint64
}

// Open creates or opens a journal at dbPath. An empty path or MemoryPath
// keeps the journal in memory. File journals get their parent directories
// created.
func Open(dbPath string) (*Journal, error) {
	if dbPath == "" {
		dbPath = MemoryPath
	}

	if dbPath != MemoryPath {
		if dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db, path: dbPath}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return j, nil
}

// Persistent reports whether the journal outlives the process. Only file
// journals do, and the game never reads them back: they are a record for
// the journal command, not saved progress.
func (j *Journal) Persistent() bool {
	return j.path != MemoryPath
}

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			grid_row INTEGER NOT NULL DEFAULT 0,
			grid_col INTEGER NOT NULL DEFAULT 0,
			lives INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores the events of one tick in a single transaction.
func (j *Journal) Record(tick uint64, events ...core.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(
		"INSERT INTO events (tick, kind, cause, grid_row, grid_col, lives) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(int64(tick), string(ev.Kind), ev.Cause, ev.Row, ev.Col, ev.Lives); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot record event: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit events: %w", err)
	}
	return nil
}

// Events returns the most recent events, oldest first. A limit of zero
// or less returns all of them.
func (j *Journal) Events(limit int) ([]Entry, error) {
	query := `SELECT id, tick, kind, cause, grid_row, grid_col, lives, created_at
		FROM (SELECT * FROM events ORDER BY id DESC LIMIT ?)
		ORDER BY id ASC`
	if limit <= 0 {
		limit = -1
	}

	rows, err := j.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tick int64
		var kind string
		var createdAt any
		if err := rows.Scan(&e.ID, &tick, &kind, &e.Cause, &e.Row, &e.Col, &e.Lives, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Tick = uint64(tick)
		e.Kind = core.EventKind(kind)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Summary aggregates the journal by event kind and death cause.
func (j *Journal) Summary() (Summary, error) {
	s := Summary{DeathsByCause: make(map[string]int)}

	rows, err := j.db.Query(
		`SELECT kind, cause, COUNT(*) FROM events GROUP BY kind, cause`,
	)
	if err != nil {
		return s, fmt.Errorf("storage: cannot summarize events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, cause string
		var n int
		if err := rows.Scan(&kind, &cause, &n); err != nil {
			return s, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		s.Events += n
		switch core.EventKind(kind) {
		case core.EventHop:
			s.Hops += n
		case core.EventDeath:
			s.Deaths += n
			s.DeathsByCause[cause] += n
		case core.EventCapture:
			s.Captures += n
		case core.EventContinue:
			s.Continues += n
		case core.EventStart:
			s.Starts += n
		case core.EventWin:
			s.Won = true
		case core.EventLose:
			s.Lost = true
		}
	}
	if err := rows.Err(); err != nil {
		return s, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var last sql.NullInt64
	if err := j.db.QueryRow("SELECT MAX(tick) FROM events").Scan(&last); err != nil {
		return s, fmt.Errorf("storage: cannot query last tick: %w", err)
	}
	if last.Valid {
		s.LastTick = uint64(last.Int64)
	}
	return s, nil
}

// Causes returns the death causes of the summary in name order.
func (s Summary) Causes() []string {
	causes := make([]string, 0, len(s.DeathsByCause))
	for c := range s.DeathsByCause {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	return causes
}

// Clear deletes every recorded event.
func (j *Journal) Clear() error {
	if _, err := j.db.Exec("DELETE FROM events"); err != nil {
		return fmt.Errorf("storage: cannot clear events: %w", err)
	}
	return nil
}

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
