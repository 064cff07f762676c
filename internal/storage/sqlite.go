// Package storage persists computed training summaries in sqlite.
package storage

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) the sqlite database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		training_type TEXT NOT NULL,
		duration REAL NOT NULL,
		distance REAL NOT NULL,
		speed REAL NOT NULL,
		calories REAL NOT NULL,
		source TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_training_type ON sessions(training_type);
	CREATE INDEX IF NOT EXISTS idx_sessions_source ON sessions(source);
	CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveSession inserts a session and fills in its ID. CreatedAt is set
// here if the caller left it zero.
func (s *Store) SaveSession(sess *Session) error {
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.Exec(`
		INSERT INTO sessions (training_type, duration, distance, speed, calories, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.TrainingType, sess.Duration, sess.Distance,
		sess.Speed, sess.Calories, sess.Source, sess.CreatedAt,
	)
	if err != nil {
		return err
	}

	sess.ID, err = res.LastInsertId()
	return err
}

// Sessions lists stored sessions, newest first.
func (s *Store) Sessions(f SessionFilters) ([]Session, error) {
	query := `
	SELECT id, training_type, duration, distance, speed, calories, source, created_at
	FROM sessions`

	var args []interface{}
	if f.TrainingType != "" {
		query += ` WHERE training_type = ?`
		args = append(args, f.TrainingType)
	}

	query += ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
		if f.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, f.Offset)
		}
	}

	sessions := []Session{}
	err := s.db.Select(&sessions, query, args...)
	return sessions, err
}

// Totals aggregates every stored session.
func (s *Store) Totals() (*Totals, error) {
	totals := &Totals{}
	err := s.db.Get(totals, `
		SELECT COUNT(*) AS sessions,
		       COALESCE(SUM(distance), 0) AS distance,
		       COALESCE(SUM(calories), 0) AS calories
		FROM sessions`)
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// TotalsByType aggregates stored sessions per training type.
func (s *Store) TotalsByType() ([]KindTotals, error) {
	totals := []KindTotals{}
	err := s.db.Select(&totals, `
		SELECT training_type,
		       COUNT(*) AS sessions,
		       SUM(distance) AS distance,
		       SUM(calories) AS calories
		FROM sessions
		GROUP BY training_type
		ORDER BY training_type`)
	return totals, err
}

// SourceSeen reports whether a session from the given source was already
// stored, so imports stay idempotent.
func (s *Store) SourceSeen(source string) (bool, error) {
	var seen bool
	err := s.db.Get(&seen, `SELECT EXISTS(SELECT 1 FROM sessions WHERE source = ?)`, source)
	if err != nil {
		return false, err
	}
	return seen, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
