package service

import (
	"context"
	"fmt"

	"weldtrack/internal/modules/progress/domain"
	progressout "weldtrack/internal/modules/progress/port/out"
)

type ProgressService struct {
	readings progressout.CompletionStore
	practice progressout.CompletionStore
}

func NewProgressService(readings, practice progressout.CompletionStore) *ProgressService {
	return &ProgressService{readings: readings, practice: practice}
}

func (s *ProgressService) store(kind domain.Kind) progressout.CompletionStore {
	if kind == domain.KindPractice {
		return s.practice
	}
	return s.readings
}

// SetDone toggles one entry and persists the whole map. Setting an entry to
// its current value is a no-op write but never an error.
func (s *ProgressService) SetDone(ctx context.Context, kind domain.Kind, itemID string, done bool) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if itemID == "" {
		return fmt.Errorf("item id is required")
	}
	store := s.store(kind)
	completion, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s progress: %w", kind, err)
	}
	completion[itemID] = done
	if err := store.Save(ctx, completion); err != nil {
		return fmt.Errorf("save %s progress: %w", kind, err)
	}
	return nil
}

func (s *ProgressService) Snapshot(ctx context.Context, kind domain.Kind) (domain.CompletionMap, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	completion, err := s.store(kind).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s progress: %w", kind, err)
	}
	return completion, nil
}

func (s *ProgressService) Replace(ctx context.Context, kind domain.Kind, m domain.CompletionMap) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := s.store(kind).Save(ctx, domain.Sanitize(m)); err != nil {
		return fmt.Errorf("save %s progress: %w", kind, err)
	}
	return nil
}

// ResetReadings clears the reading map only; practice progress is untouched.
func (s *ProgressService) ResetReadings(ctx context.Context) error {
	if err := s.readings.Save(ctx, domain.CompletionMap{}); err != nil {
		return fmt.Errorf("reset reading progress: %w", err)
	}
	return nil
}
