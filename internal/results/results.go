// internal/results/results.go
//
// SQLite persistence for simulation run summaries.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Idempotent schema bootstrap for the sim_runs table.
//   - Insert and best-runs query helpers.
//
// Only aggregate benchmark summaries are stored here — never per-game
// state or guess history.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sim_runs (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    hand_size    INTEGER NOT NULL,
    games        INTEGER NOT NULL,
    avg_guesses  REAL    NOT NULL,
    max_guesses  INTEGER NOT NULL,
    seed         INTEGER NOT NULL,
    elapsed_ms   INTEGER NOT NULL,
    created_at   TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
);`

// Run is one simulation run summary, as stored in sim_runs.
type Run struct {
	HandSize   int
	Games      int
	AvgGuesses float64
	MaxGuesses int
	Seed       int64
	ElapsedMs  int64
	CreatedAt  time.Time
}

// Open opens (and creates if missing) the results database.
//
//   - Ensures the parent directory exists for relative DSNs (./data/runs.db).
//   - Configures busy timeout and WAL journaling.
//   - Bootstraps the schema.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create sim_runs: %w", err)
	}
	return db, nil
}

// InsertRun records one simulation summary.
func InsertRun(ctx context.Context, db *sql.DB, r Run) error {
	_, err := db.ExecContext(ctx, `
        INSERT INTO sim_runs (hand_size, games, avg_guesses, max_guesses, seed, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.HandSize, r.Games, r.AvgGuesses, r.MaxGuesses, r.Seed, r.ElapsedMs,
	)
	return err
}

// BestRuns fetches the strongest runs for a hand size, ordered by average
// guess count ascending, then worst case, then recency. Default limit is
// 20 if not specified.
func BestRuns(ctx context.Context, db *sql.DB, handSize, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
        SELECT hand_size, games, avg_guesses, max_guesses, seed, elapsed_ms, created_at
        FROM sim_runs
        WHERE hand_size=?
        ORDER BY avg_guesses ASC, max_guesses ASC, created_at DESC
        LIMIT ?`, handSize, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.HandSize, &r.Games, &r.AvgGuesses, &r.MaxGuesses, &r.Seed, &r.ElapsedMs, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}
