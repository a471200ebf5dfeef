package service

import (
	"context"
	"fmt"

	"weldtrack/internal/modules/streak/domain"
	streakout "weldtrack/internal/modules/streak/port/out"
	"weldtrack/internal/platform/clock"
)

type StreakService struct {
	clock clock.Clock
	store streakout.StreakStore
}

func NewStreakService(clock clock.Clock, store streakout.StreakStore) *StreakService {
	return &StreakService{clock: clock, store: store}
}

// Advance credits a qualifying action on today's date. The state is only
// written back when the transition changed it.
func (s *StreakService) Advance(ctx context.Context, actionType string) (domain.Streak, error) {
	if actionType == "" {
		return domain.Streak{}, fmt.Errorf("action type is required")
	}
	current, err := s.store.Load(ctx)
	if err != nil {
		return domain.Streak{}, fmt.Errorf("load streak: %w", err)
	}
	today := s.clock.Now().Format(domain.DayFormat)
	next := domain.Advance(domain.Normalize(current), actionType, today)
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Streak{}, fmt.Errorf("save streak: %w", err)
	}
	return next, nil
}

func (s *StreakService) Current(ctx context.Context) (domain.Streak, error) {
	current, err := s.store.Load(ctx)
	if err != nil {
		return domain.Streak{}, fmt.Errorf("load streak: %w", err)
	}
	return domain.Normalize(current), nil
}

func (s *StreakService) Replace(ctx context.Context, streak domain.Streak) error {
	if err := s.store.Save(ctx, domain.Normalize(streak)); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}
