// Package storage provides SQLite-based persistence for finished runs and
// per-level clear times. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies. In-progress runs are never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run outcomes stored in runs.outcome.
const (
	OutcomeComplete  = "complete"
	OutcomeTimeout   = "timeout"
	OutcomeFell      = "fell"
	OutcomeAbandoned = "abandoned"
)

// RunRecord is one finished (or abandoned) run.
type RunRecord struct {
	ID            int64
	Mode          string // game ID, "trail" or "trail_practice"
	Player        string
	StartLevel    int
	LevelsCleared int
	Score         int
	Outcome       string
	DurationSecs  int
	CreatedAt     time.Time
}

// LevelBest is the fastest recorded clear of a level.
type LevelBest struct {
	Level       int
	Seconds     float64
	Player      string
	Clears      int
	LastCleared time.Time
}

// RunStats contains aggregated statistics for a mode.
type RunStats struct {
	Mode        string
	Runs        int
	Completed   int
	HighScore   int
	AvgScore    float64
	MostCleared int
	LastPlayed  time.Time
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			start_level INTEGER NOT NULL DEFAULT 1,
			levels_cleared INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);

		CREATE TABLE IF NOT EXISTS level_clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			seconds_used REAL NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_clears_level ON level_clears(level, seconds_used);
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

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (mode, player, start_level, levels_cleared, score, outcome, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Player, r.StartLevel, r.LevelsCleared, r.Score, r.Outcome, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given mode.
// Results are ordered by score descending, then by levels cleared.
func (s *Store) TopRuns(mode string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, player, start_level, levels_cleared, score, outcome, duration_secs, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, levels_cleared DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Player, &r.StartLevel, &r.LevelsCleared,
			&r.Score, &r.Outcome, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest run score for the given mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveLevelClear records how long a level took to clear.
func (s *Store) SaveLevelClear(level int, seconds float64, player string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO level_clears (level, seconds_used, player) VALUES (?, ?, ?)",
		level, seconds, player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestClearTimes returns the fastest clear of every level that has been
// cleared at least once, ordered by level.
func (s *Store) BestClearTimes() ([]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT c.level, c.seconds_used, c.player, agg.clears, agg.last
		 FROM level_clears c
		 JOIN (
			SELECT level, MIN(seconds_used) AS best, COUNT(*) AS clears, MAX(created_at) AS last
			FROM level_clears
			GROUP BY level
		 ) agg ON agg.level = c.level AND agg.best = c.seconds_used
		 GROUP BY c.level
		 ORDER BY c.level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clear times: %w", err)
	}
	defer rows.Close()

	var bests []LevelBest
	for rows.Next() {
		var b LevelBest
		var last any
		if err := rows.Scan(&b.Level, &b.Seconds, &b.Player, &b.Clears, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.LastCleared = parseTime(last)
		bests = append(bests, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return bests, nil
}

// Stats retrieves aggregated statistics for a mode.
func (s *Store) Stats(mode string) (*RunStats, error) {
	stats := &RunStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(MAX(levels_cleared), 0)
		 FROM runs WHERE mode = ?`,
		OutcomeComplete, mode,
	).Scan(&stats.Runs, &stats.Completed, &stats.HighScore, &stats.AvgScore, &stats.MostCleared)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mode = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may return as
// either time.Time or string.
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
