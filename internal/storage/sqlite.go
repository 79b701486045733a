// Package storage provides SQLite-based persistence for solve records.
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
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// SolveRecord is one finished round: the board went from shuffled back to solved.
type SolveRecord struct {
	ID        int64
	GameID    string
	GridSize  int
	Moves     int
	Duration  time.Duration // time spent in play, stored with millisecond precision
	Player    string        // "local" or the SSH user
	CreatedAt time.Time
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
	// SSH sessions share one store; a single connection serialises writers.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_id ON solves(game_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(game_id, moves ASC, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_solves_player ON solves(player);
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

// SaveSolve records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(r SolveRecord) (int64, error) {
	if r.Player == "" {
		r.Player = "local"
	}
	result, err := s.db.Exec(
		"INSERT INTO solves (game_id, grid_size, moves, duration_ms, player) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.GridSize, r.Moves, r.Duration.Milliseconds(), r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const solveColumns = `id, game_id, grid_size, moves, duration_ms, player, created_at`

// BestSolves retrieves the best N solves for the given game:
// fewest moves first, then fastest.
func (s *Store) BestSolves(gameID string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// PlayerSolves retrieves the most recent solves by one player across all games.
func (s *Store) PlayerSolves(player string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]SolveRecord, error) {
	defer rows.Close()

	var entries []SolveRecord
	for rows.Next() {
		var e SolveRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.GridSize, &e.Moves, &durationMS, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestMoves returns the fewest moves any solve of the game took.
// Returns 0 if the game has never been solved.
func (s *Store) BestMoves(gameID string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE game_id = ?",
		gameID,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearSolves deletes all solves for the given game.
func (s *Store) ClearSolves(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Solves     int
	BestMoves  int
	AvgMoves   float64
	BestTime   time.Duration
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var bestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0), COALESCE(MIN(duration_ms), 0)
		 FROM solves WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Solves, &stats.BestMoves, &stats.AvgMoves, &bestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.BestTime = time.Duration(bestMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been solved.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var bestMS int64
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Solves, &gs.BestMoves, &gs.AvgMoves, &bestMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.BestTime = time.Duration(bestMS) * time.Millisecond
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// FormatDuration renders d as m:ss.t, the way solve times are shown.
func FormatDuration(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
