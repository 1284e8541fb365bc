// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished or aborted simulation run.
type MatchRecord struct {
	ID            int64
	Scenario      string
	Seed          uint64
	Players       int
	BoardSize     float64
	SpawnInterval float64
	Ticks         uint64
	Duration      int    // Duration in seconds
	Digest        string // Final-state digest for replay comparison
	Winner        int    // Player id, or -1 when unresolved
	EndReason     string // "completed", "aborted", "timeout"
	CreatedAt     time.Time
	Standings     []PlayerStanding
}

// PlayerStanding captures one player's final position in a match.
type PlayerStanding struct {
	Player int
	Alive  int
	X, Y   int
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			seed INTEGER NOT NULL,
			players INTEGER NOT NULL,
			board_size REAL NOT NULL,
			spawn_interval REAL NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL DEFAULT '',
			winner INTEGER,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_scenario ON matches(scenario);
		CREATE INDEX IF NOT EXISTS idx_matches_seed ON matches(scenario, seed);

		CREATE TABLE IF NOT EXISTS match_players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id INTEGER NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
			player INTEGER NOT NULL,
			alive INTEGER NOT NULL DEFAULT 0,
			centroid_x INTEGER NOT NULL DEFAULT 0,
			centroid_y INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_match_players_match ON match_players(match_id);
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

// SaveMatch records a finished run with its final standings.
// Returns the ID of the inserted match.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	winner := sql.NullInt64{Int64: int64(rec.Winner), Valid: rec.Winner >= 0}
	res, err := tx.Exec(
		`INSERT INTO matches
		 (scenario, seed, players, board_size, spawn_interval, ticks, duration_secs, digest, winner, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Scenario,
		int64(rec.Seed),
		rec.Players,
		rec.BoardSize,
		rec.SpawnInterval,
		int64(rec.Ticks),
		rec.Duration,
		rec.Digest,
		winner,
		rec.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, p := range rec.Standings {
		if _, err := tx.Exec(
			`INSERT INTO match_players (match_id, player, alive, centroid_x, centroid_y)
			 VALUES (?, ?, ?, ?, ?)`,
			id, p.Player, p.Alive, p.X, p.Y,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save standing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit match: %w", err)
	}

	return id, nil
}

// MatchByID retrieves a match with its standings, or nil if absent.
func (s *Store) MatchByID(id int64) (*MatchRecord, error) {
	var rec MatchRecord
	var seed int64
	var ticks int64
	var winner sql.NullInt64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, scenario, seed, players, board_size, spawn_interval,
		        ticks, duration_secs, digest, winner, end_reason, created_at
		 FROM matches
		 WHERE id = ?`,
		id,
	).Scan(
		&rec.ID,
		&rec.Scenario,
		&seed,
		&rec.Players,
		&rec.BoardSize,
		&rec.SpawnInterval,
		&ticks,
		&rec.Duration,
		&rec.Digest,
		&winner,
		&rec.EndReason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	rec.Seed = uint64(seed)
	rec.Ticks = uint64(ticks)
	rec.Winner = -1
	if winner.Valid {
		rec.Winner = int(winner.Int64)
	}
	rec.CreatedAt = parseTime(createdAt)

	standings, err := s.standingsFor(rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Standings = standings

	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first, with
// their standings attached.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, seed, players, board_size, spawn_interval,
		        ticks, duration_secs, digest, winner, end_reason, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var seed int64
		var ticks int64
		var winner sql.NullInt64
		var createdAt any

		if err := rows.Scan(
			&rec.ID,
			&rec.Scenario,
			&seed,
			&rec.Players,
			&rec.BoardSize,
			&rec.SpawnInterval,
			&ticks,
			&rec.Duration,
			&rec.Digest,
			&winner,
			&rec.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.Seed = uint64(seed)
		rec.Ticks = uint64(ticks)
		rec.Winner = -1
		if winner.Valid {
			rec.Winner = int(winner.Int64)
		}
		rec.CreatedAt = parseTime(createdAt)

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range records {
		standings, err := s.standingsFor(records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Standings = standings
	}

	return records, nil
}

// standingsFor loads the per-player rows for one match, in player order.
func (s *Store) standingsFor(matchID int64) ([]PlayerStanding, error) {
	rows, err := s.db.Query(
		`SELECT player, alive, centroid_x, centroid_y
		 FROM match_players
		 WHERE match_id = ?
		 ORDER BY player`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []PlayerStanding
	for rows.Next() {
		var p PlayerStanding
		if err := rows.Scan(&p.Player, &p.Alive, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standing: %w", err)
		}
		standings = append(standings, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return standings, nil
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	Scenario   string
	Matches    int
	AvgTicks   float64
	LastPlayed time.Time
}

// GetScenarioStats retrieves aggregated statistics for a scenario.
func (s *Store) GetScenarioStats(scenario string) (*ScenarioStats, error) {
	stats := &ScenarioStats{Scenario: scenario}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(ticks), 0)
		 FROM matches WHERE scenario = ?`,
		scenario,
	).Scan(&stats.Matches, &stats.AvgTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches WHERE scenario = ? ORDER BY id DESC LIMIT 1`,
		scenario,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// DigestsForSeed returns the stored digests for one scenario and seed,
// newest first. Distinct values indicate a determinism regression.
func (s *Store) DigestsForSeed(scenario string, seed uint64, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT digest FROM matches
		 WHERE scenario = ? AND seed = ? AND digest != ''
		 ORDER BY id DESC
		 LIMIT ?`,
		scenario, int64(seed), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query digests: %w", err)
	}
	defer rows.Close()

	var digests []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("storage: cannot scan digest: %w", err)
		}
		digests = append(digests, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return digests, nil
}

// parseTime converts a scanned datetime column. The driver may return
// either time.Time or the raw text representation.
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
