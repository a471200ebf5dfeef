package out

import (
	"context"

	"weldtrack/internal/modules/catalog/domain"
)

// CustomReadingStore persists the user-added reading list as a whole value.
// Loads fail soft: a missing or unreadable store yields an empty list.
type CustomReadingStore interface {
	Load(ctx context.Context) ([]domain.ReadingItem, error)
	Save(ctx context.Context, items []domain.ReadingItem) error
}

// ItemIndexProjector maintains the rebuildable SQLite read model of the
// combined catalog.
type ItemIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertReading(ctx context.Context, item domain.ReadingItem) error
	UpsertPractice(ctx context.Context, item domain.PracticeItem) error
	Remove(ctx context.Context, id string) error
}

// ProgressCascade removes completion entries for readings that leave the
// catalog, so the progress silo never counts deleted custom items.
type ProgressCascade interface {
	ForgetReadings(ctx context.Context, ids []string) error
	// ForgetCustomPrefixed clears every completion entry whose id carries
	// the custom prefix. Stale entries can outlive the custom list itself,
	// so clearing sweeps by prefix rather than by the removed ids.
	ForgetCustomPrefixed(ctx context.Context) error
}
