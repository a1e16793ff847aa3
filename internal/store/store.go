// Package store handles SQLite persistence of generation history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/pwseq/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps SQLite access for generation records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			profile TEXT NOT NULL,
			items INTEGER NOT NULL,
			length INTEGER NOT NULL,
			entropy REAL NOT NULL,
			advanced INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_generations_profile ON generations(profile);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertGeneration stores one generation record and returns its ID. The
// password itself is never part of a record.
func (s *Store) InsertGeneration(ctx context.Context, rec model.Generation) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, created_at, profile, items, length, entropy, advanced)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		createdAt.UTC().Format(timeLayout),
		rec.Profile,
		rec.Items,
		rec.Length,
		rec.Entropy,
		boolToInt(rec.Advanced),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListGenerations returns records matching filter, oldest first.
func (s *Store) ListGenerations(ctx context.Context, filter model.HistoryFilter) ([]model.Generation, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Profile != "" {
		clauses = append(clauses, "profile = ?")
		args = append(args, filter.Profile)
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, created_at, profile, items, length, entropy, advanced
		FROM generations
		WHERE %s
		ORDER BY created_at ASC, rowid ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Generation
	for rows.Next() {
		var rec model.Generation
		var createdAt string
		var advanced int
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Profile, &rec.Items, &rec.Length, &rec.Entropy, &advanced); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		rec.Advanced = advanced != 0
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(result) > filter.Last {
		result = result[len(result)-filter.Last:]
	}
	return result, nil
}

// Prune deletes records older than before and returns how many were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM generations WHERE created_at < ?`, before.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
