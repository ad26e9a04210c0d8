// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a history of rendered images in a SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/image2txt/pkg/types"
)

// defaultMaxResults is used when the config leaves MaxResults unset.
const defaultMaxResults = 20

// Store manages the render history database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the catalog database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("catalog path not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			source_width INTEGER NOT NULL,
			source_height INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			digest TEXT NOT NULL,
			rendered_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_source ON renders(source_path)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_status ON renders(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends r to the history. A zero RenderedAt is stamped with the
// current time and an empty Status is stored as converted.
func (s *Store) Record(ctx context.Context, r types.Render) error {
	if r.RenderedAt.IsZero() {
		r.RenderedAt = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = types.ConversionDone
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renders (source_path, output_path, source_width, source_height,
			cols, rows, status, error_message, digest, rendered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SourcePath, r.OutputPath, r.SourceWidth, r.SourceHeight,
		r.Cols, r.Rows, string(r.Status), r.Error, r.Digest, r.RenderedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting render for %s: %w", r.SourcePath, err)
	}
	return nil
}

// QueryOptions filters a history listing.
type QueryOptions struct {
	// Source restricts results to one source path.
	Source string

	// Status restricts results to converted or failed renders.
	Status types.ConversionStatus

	// Limit caps the result count. Zero uses the store default.
	Limit int
}

// List returns recorded renders, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.Render, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, source_path, output_path, source_width, source_height,
			cols, rows, status, error_message, digest, rendered_at
		FROM renders WHERE 1=1`
	var args []any
	if opts.Source != "" {
		query += ` AND source_path = ?`
		args = append(args, opts.Source)
	}
	if opts.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(opts.Status))
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var renders []types.Render
	for rows.Next() {
		var (
			r      types.Render
			status string
			ts     string
		)
		if err := rows.Scan(&r.ID, &r.SourcePath, &r.OutputPath, &r.SourceWidth,
			&r.SourceHeight, &r.Cols, &r.Rows, &status, &r.Error, &r.Digest, &ts); err != nil {
			return nil, fmt.Errorf("scanning render row: %w", err)
		}
		r.Status = types.ConversionStatus(status)
		r.RenderedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing rendered_at %q: %w", ts, err)
		}
		renders = append(renders, r)
	}
	return renders, rows.Err()
}
