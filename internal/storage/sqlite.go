// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single finished run.
type Run struct {
	ID        string
	GameID    string
	Outcome   Outcome
	Score     int     // distance in pixels
	Elapsed   float64 // seconds of play
	CreatedAt time.Time
}

// Summary aggregates all runs of a game.
type Summary struct {
	GameID     string
	Runs       int
	Wins       int
	Losses     int
	BestScore  int
	FastestWin float64 // seconds, 0 if never won
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('win', 'lose')),
			score INTEGER NOT NULL,
			elapsed_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(gameID string, outcome Outcome, score int, elapsed float64) (string, error) {
	if outcome != OutcomeWin && outcome != OutcomeLose {
		return "", fmt.Errorf("storage: invalid outcome %q", outcome)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, game_id, outcome, score, elapsed_secs) VALUES (?, ?, ?, ?, ?)",
		id, gameID, string(outcome), score, elapsed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs for the given game.
// Wins rank above losses; ties go to the longer distance, then the faster run.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, elapsed_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY outcome = 'win' DESC, score DESC, elapsed_secs ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &outcome, &r.Score, &r.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating rows: %w", err)
	}

	return runs, nil
}

// BestScore returns the longest distance recorded for the given game.
// Returns 0 if no runs exist.
func (s *Store) BestScore(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Summary aggregates every run recorded for the given game.
func (s *Store) Summary(gameID string) (*Summary, error) {
	sum := &Summary{GameID: gameID}

	var fastest sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'win'), 0),
		        COALESCE(SUM(outcome = 'lose'), 0),
		        COALESCE(MAX(score), 0),
		        MIN(CASE WHEN outcome = 'win' THEN elapsed_secs END)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Runs, &sum.Wins, &sum.Losses, &sum.BestScore, &fastest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	if fastest.Valid {
		sum.FastestWin = fastest.Float64
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	return sum, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
