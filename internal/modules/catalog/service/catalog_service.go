package service

import (
	"context"
	"fmt"

	"weldtrack/internal/modules/catalog/domain"
	catalogout "weldtrack/internal/modules/catalog/port/out"
	apperrors "weldtrack/internal/platform/errors"
	"weldtrack/internal/platform/id"
)

type CatalogService struct {
	idGen id.Generator
	store catalogout.CustomReadingStore
}

func NewCatalogService(idGen id.Generator, store catalogout.CustomReadingStore) *CatalogService {
	return &CatalogService{idGen: idGen, store: store}
}

// ListReadings returns the combined catalog: built-in items first, then
// custom items in insertion order.
func (s *CatalogService) ListReadings(ctx context.Context) ([]domain.ReadingItem, error) {
	custom, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom readings: %w", err)
	}
	return append(domain.BuiltinReadings(), custom...), nil
}

func (s *CatalogService) ListPractice(_ context.Context) []domain.PracticeItem {
	return domain.BuiltinPractice()
}

func (s *CatalogService) ListCustom(ctx context.Context) ([]domain.ReadingItem, error) {
	custom, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom readings: %w", err)
	}
	return custom, nil
}

// AddCustom validates, deduplicates against the full catalog, and appends a
// user-added reading. Duplicates leave the stored list untouched.
func (s *CatalogService) AddCustom(ctx context.Context, title, link, description, categoryRaw string) (domain.ReadingItem, error) {
	item, err := domain.NewCustomReading(s.idGen.New(), title, link, description, categoryRaw)
	if err != nil {
		return domain.ReadingItem{}, err
	}
	existing, err := s.ListReadings(ctx)
	if err != nil {
		return domain.ReadingItem{}, err
	}
	if domain.IsDuplicate(existing, item.Title, item.Link) {
		return domain.ReadingItem{}, apperrors.ErrDuplicateItem
	}
	custom, err := s.store.Load(ctx)
	if err != nil {
		return domain.ReadingItem{}, fmt.Errorf("load custom readings: %w", err)
	}
	if err := s.store.Save(ctx, append(custom, item)); err != nil {
		return domain.ReadingItem{}, fmt.Errorf("save custom readings: %w", err)
	}
	return item, nil
}

// RemoveCustom deletes one custom reading. Removing an unknown id is a no-op;
// the returned flag tells the caller whether a cascade is needed.
func (s *CatalogService) RemoveCustom(ctx context.Context, itemID string) (bool, error) {
	custom, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load custom readings: %w", err)
	}
	kept := custom[:0]
	removed := false
	for _, item := range custom {
		if item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return false, nil
	}
	if err := s.store.Save(ctx, kept); err != nil {
		return false, fmt.Errorf("save custom readings: %w", err)
	}
	return true, nil
}

// ClearCustom removes every custom reading and reports the removed ids.
func (s *CatalogService) ClearCustom(ctx context.Context) ([]string, error) {
	custom, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom readings: %w", err)
	}
	ids := make([]string, 0, len(custom))
	for _, item := range custom {
		ids = append(ids, item.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if err := s.store.Save(ctx, []domain.ReadingItem{}); err != nil {
		return nil, fmt.Errorf("save custom readings: %w", err)
	}
	return ids, nil
}

// ReplaceCustom overwrites the custom list with sanitized imported records.
func (s *CatalogService) ReplaceCustom(ctx context.Context, items []domain.ReadingItem) error {
	if err := s.store.Save(ctx, domain.SanitizeCustom(items)); err != nil {
		return fmt.Errorf("save custom readings: %w", err)
	}
	return nil
}

func (s *CatalogService) FilterValues(ctx context.Context) ([]string, error) {
	custom, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom readings: %w", err)
	}
	return domain.FilterValues(custom), nil
}
