package out

import (
	"context"

	"weldtrack/internal/modules/progress/domain"
)

// CompletionStore persists one completion map as a whole value. Reading and
// practice each get their own store instance under their own state file.
type CompletionStore interface {
	Load(ctx context.Context) (domain.CompletionMap, error)
	Save(ctx context.Context, m domain.CompletionMap) error
}

// CompletionProjector mirrors done flags into the SQLite index for the stats
// read model.
type CompletionProjector interface {
	SetDone(ctx context.Context, kind domain.Kind, itemID string, done bool) error
	Stats(ctx context.Context) ([]domain.KindStats, error)
	ResetKind(ctx context.Context, kind domain.Kind) error
}
