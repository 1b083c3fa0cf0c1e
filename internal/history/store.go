package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Search struct {
	ID          string
	Query       string
	ResultCount int
	CreatedAt   time.Time
}

func NewSearch(query string, resultCount int) *Search {
	return &Search{
		ID:          uuid.New().String(),
		Query:       query,
		ResultCount: resultCount,
		CreatedAt:   time.Now(),
	}
}

// Store keeps executed searches in SQLite.
type Store struct {
	conn *sql.DB
}

func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *Store) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS searches (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	`

	_, err := s.conn.Exec(query)
	return err
}

func (s *Store) Insert(search *Search) error {
	_, err := s.conn.Exec(
		`INSERT INTO searches (id, query, result_count, created_at) VALUES (?, ?, ?, ?)`,
		search.ID, search.Query, search.ResultCount, search.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert search: %w", err)
	}
	return nil
}

// recentScanFactor bounds how many rows Recent scans while deduplicating:
// the table grows without bound, and repeats of the same query are the
// common case, so a generous multiple of the requested limit is enough.
const recentScanFactor = 50

// Recent returns the latest distinct queries, newest first.
func (s *Store) Recent(limit int) ([]Search, error) {
	rows, err := s.conn.Query(`
		SELECT id, query, result_count, created_at
		FROM searches
		ORDER BY created_at DESC
		LIMIT ?`, recentScanFactor*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var searches []Search
	for rows.Next() {
		var search Search
		if err := rows.Scan(&search.ID, &search.Query, &search.ResultCount, &search.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		if seen[search.Query] {
			continue
		}
		seen[search.Query] = true
		searches = append(searches, search)
		if len(searches) == limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return searches, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}
