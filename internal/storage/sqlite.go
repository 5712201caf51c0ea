// Package storage provides SQLite-based persistence for generated mazes and
// the walks players complete through them.
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

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// ErrNotFound is returned when a maze ID does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MazeRecord is a saved maze with the parameters that produced it.
type MazeRecord struct {
	ID        int64
	Name      string
	Algorithm string
	Width     int
	Height    int
	Seed      int64
	Cells     []byte // passage flags, see maze.Bytes
	CreatedAt time.Time
}

// Matrix returns the dimensions of the saved maze.
func (r MazeRecord) Matrix() grid.Matrix {
	return grid.New(r.Width, r.Height)
}

// Maze rebuilds the saved maze.
func (r MazeRecord) Maze() (*maze.Maze, error) {
	return maze.FromBytes(r.Matrix(), r.Cells)
}

// WalkEntry is one completed walk through a maze.
type WalkEntry struct {
	ID        int64
	MazeID    int64
	Player    string
	Steps     int
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

	// foreign_keys is per connection, so set it in the DSN for every
	// connection the pool opens.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
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
		CREATE TABLE IF NOT EXISTS mazes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			algorithm TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			cells BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mazes_created ON mazes(created_at DESC);

		CREATE TABLE IF NOT EXISTS walks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id INTEGER NOT NULL REFERENCES mazes(id) ON DELETE CASCADE,
			player TEXT NOT NULL DEFAULT '',
			steps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_walks_best ON walks(maze_id, steps ASC);
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

// SaveMaze records a generated maze. Returns the ID of the inserted record.
func (s *Store) SaveMaze(name, algorithm string, seed int64, mz *maze.Maze) (int64, error) {
	m := mz.Matrix()
	result, err := s.db.Exec(
		"INSERT INTO mazes (name, algorithm, width, height, seed, cells) VALUES (?, ?, ?, ?, ?, ?)",
		name, algorithm, m.Width, m.Height, seed, mz.Bytes(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save maze: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// GetMaze loads a saved maze by ID.
func (s *Store) GetMaze(id int64) (MazeRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, name, algorithm, width, height, seed, cells, created_at
		 FROM mazes
		 WHERE id = ?`,
		id,
	)

	var r MazeRecord
	var createdAt any
	err := row.Scan(&r.ID, &r.Name, &r.Algorithm, &r.Width, &r.Height, &r.Seed, &r.Cells, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("%w: maze %d", ErrNotFound, id)
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot load maze %d: %w", id, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// ListMazes returns the most recently saved mazes, newest first.
// Cell data is not loaded.
func (s *Store) ListMazes(limit int) ([]MazeRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, algorithm, width, height, seed, created_at
		 FROM mazes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mazes: %w", err)
	}
	defer rows.Close()

	var records []MazeRecord
	for rows.Next() {
		var r MazeRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Algorithm, &r.Width, &r.Height, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteMaze removes a maze and its walks.
func (s *Store) DeleteMaze(id int64) error {
	// Walks go with the maze through ON DELETE CASCADE.
	result, err := s.db.Exec("DELETE FROM mazes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete maze: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: maze %d", ErrNotFound, id)
	}
	return nil
}

// SaveWalk records a completed walk through a maze.
func (s *Store) SaveWalk(mazeID int64, player string, steps int) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO walks (maze_id, player, steps)
		 SELECT ?, ?, ? WHERE EXISTS (SELECT 1 FROM mazes WHERE id = ?)`,
		mazeID, player, steps, mazeID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save walk: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return 0, fmt.Errorf("%w: maze %d", ErrNotFound, mazeID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestWalk returns the fewest steps anyone needed for the maze.
// Returns 0 if nobody has finished it.
func (s *Store) BestWalk(mazeID int64) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(steps) FROM walks WHERE maze_id = ?",
		mazeID,
	).Scan(&steps)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best walk: %w", err)
	}

	if !steps.Valid {
		return 0, nil
	}

	return int(steps.Int64), nil
}

// Walks returns the best walks for a maze, fewest steps first.
func (s *Store) Walks(mazeID int64, limit int) ([]WalkEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, maze_id, player, steps, created_at
		 FROM walks
		 WHERE maze_id = ?
		 ORDER BY steps ASC, id ASC
		 LIMIT ?`,
		mazeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query walks: %w", err)
	}
	defer rows.Close()

	var entries []WalkEntry
	for rows.Next() {
		var e WalkEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MazeID, &e.Player, &e.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
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
