// Package store keeps a per-document snapshot log in sqlite. A snapshot is
// recorded on every save; identical consecutive content is deduplicated by
// content hash.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/inkdraft/inkdraft/pkg/doc"
)

var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one saved document state.
type Snapshot struct {
	ID        int64
	DocPath   string
	Hash      string
	Words     int
	Content   string
	CreatedAt time.Time
}

// Store wraps the snapshot database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	doc_path   TEXT NOT NULL,
	hash       TEXT NOT NULL,
	words      INTEGER NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_path_time ON snapshots(doc_path, created_at DESC);
`

// Open opens (creating if needed) the snapshot DB at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save records content for docPath. When the newest snapshot for the path
// already has the same content hash nothing is written and saved is false.
func (s *Store) Save(ctx context.Context, docPath, content string) (snap Snapshot, saved bool, err error) {
	d := doc.Document{Path: docPath, Text: content}
	hash := d.Hash()

	var lastHash string
	err = s.db.QueryRowContext(ctx,
		`SELECT hash FROM snapshots WHERE doc_path = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		docPath).Scan(&lastHash)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, err
	}
	if lastHash == hash {
		return Snapshot{}, false, nil
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (doc_path, hash, words, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		docPath, hash, d.WordCount(), content, now)
	if err != nil {
		return Snapshot{}, false, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Snapshot{}, false, err
	}
	return Snapshot{ID: id, DocPath: docPath, Hash: hash, Words: d.WordCount(), Content: content, CreatedAt: now}, true, nil
}

// List returns snapshots for docPath, newest first, without content bodies.
func (s *Store) List(ctx context.Context, docPath string, limit int) ([]Snapshot, error) {
	q := `SELECT id, doc_path, hash, words, created_at FROM snapshots WHERE doc_path = ? ORDER BY created_at DESC, id DESC`
	args := []any{docPath}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var sn Snapshot
		if err := rows.Scan(&sn.ID, &sn.DocPath, &sn.Hash, &sn.Words, &sn.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}

// Get fetches one snapshot by id, content included.
func (s *Store) Get(ctx context.Context, id int64) (Snapshot, error) {
	var sn Snapshot
	err := s.db.QueryRowContext(ctx,
		`SELECT id, doc_path, hash, words, content, created_at FROM snapshots WHERE id = ?`, id).
		Scan(&sn.ID, &sn.DocPath, &sn.Hash, &sn.Words, &sn.Content, &sn.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}
	return sn, nil
}

// Prune deletes all but the newest keep snapshots for docPath and returns
// the number removed.
func (s *Store) Prune(ctx context.Context, docPath string, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM snapshots WHERE doc_path = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE doc_path = ? ORDER BY created_at DESC, id DESC LIMIT ?
		)`, docPath, docPath, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
