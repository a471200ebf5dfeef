package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"weldtrack/internal/modules/catalog/domain"
	catalogout "weldtrack/internal/modules/catalog/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteItemProjector mirrors the combined catalog into a local SQLite index.
// The JSON state files stay the source of truth; the index serves list
// filtering and stats queries and can always be rebuilt with reindex.
type SQLiteItemProjector struct {
	db *sql.DB
}

func NewSQLiteItemProjector(dbPath string) (catalogout.ItemIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteItemProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteItemProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS items (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  title TEXT NOT NULL,
  category TEXT,
  focus TEXT,
  link TEXT,
  tags TEXT,
  origin TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	return nil
}

func (s *SQLiteItemProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("reset items: %w", err)
	}
	return nil
}

func (s *SQLiteItemProjector) UpsertReading(ctx context.Context, item domain.ReadingItem) error {
	const stmt = `
INSERT INTO items (id, kind, title, category, focus, link, tags, origin)
VALUES (?, 'reading', ?, ?, '', ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  category=excluded.category,
  link=excluded.link,
  tags=excluded.tags,
  origin=excluded.origin;
`
	_, err := s.db.ExecContext(ctx, stmt, item.ID, item.Title, item.Category, item.Link, strings.Join(item.Tags, ","), string(item.Origin))
	if err != nil {
		return fmt.Errorf("upsert reading item: %w", err)
	}
	return nil
}

func (s *SQLiteItemProjector) UpsertPractice(ctx context.Context, item domain.PracticeItem) error {
	const stmt = `
INSERT INTO items (id, kind, title, category, focus, link, tags, origin)
VALUES (?, 'practice', ?, '', ?, '', '', 'default')
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  focus=excluded.focus;
`
	_, err := s.db.ExecContext(ctx, stmt, item.ID, item.Title, item.Focus)
	if err != nil {
		return fmt.Errorf("upsert practice item: %w", err)
	}
	return nil
}

func (s *SQLiteItemProjector) Remove(ctx context.Context, itemID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}
