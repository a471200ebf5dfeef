package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"weldtrack/internal/modules/progress/domain"
	progressout "weldtrack/internal/modules/progress/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteCompletionProjector mirrors done flags into the shared index database.
// It owns the completion table; the items table is owned by the catalog
// projector and joined read-only for totals.
type SQLiteCompletionProjector struct {
	db *sql.DB
}

func NewSQLiteCompletionProjector(dbPath string) (progressout.CompletionProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteCompletionProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteCompletionProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS completion (
  item_id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  done INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create completion table: %w", err)
	}
	return nil
}

func (s *SQLiteCompletionProjector) SetDone(ctx context.Context, kind domain.Kind, itemID string, done bool) error {
	const stmt = `
INSERT INTO completion (item_id, kind, done) VALUES (?, ?, ?)
ON CONFLICT(item_id) DO UPDATE SET kind=excluded.kind, done=excluded.done;
`
	flag := 0
	if done {
		flag = 1
	}
	if _, err := s.db.ExecContext(ctx, stmt, itemID, string(kind), flag); err != nil {
		return fmt.Errorf("upsert completion: %w", err)
	}
	return nil
}

func (s *SQLiteCompletionProjector) ResetKind(ctx context.Context, kind domain.Kind) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM completion WHERE kind = ?`, string(kind)); err != nil {
		return fmt.Errorf("reset completion: %w", err)
	}
	return nil
}

// Stats joins the catalog index with completion flags. Completion rows whose
// item left the catalog do not count, matching the in-memory percentages.
func (s *SQLiteCompletionProjector) Stats(ctx context.Context) ([]domain.KindStats, error) {
	const query = `
SELECT items.kind,
       COUNT(items.id),
       COALESCE(SUM(CASE WHEN completion.done = 1 THEN 1 ELSE 0 END), 0)
FROM items
LEFT JOIN completion ON completion.item_id = items.id
GROUP BY items.kind
ORDER BY items.kind;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	out := []domain.KindStats{}
	for rows.Next() {
		var kind string
		var total, done int
		if err := rows.Scan(&kind, &total, &done); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		out = append(out, domain.KindStats{Kind: domain.Kind(kind), Done: done, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats rows: %w", err)
	}
	return out, nil
}
