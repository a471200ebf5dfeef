package out

import (
	"context"

	"weldtrack/internal/modules/streak/domain"
)

// StreakStore persists the streak record as a whole value. Loads fail soft to
// the zero streak.
type StreakStore interface {
	Load(ctx context.Context) (domain.Streak, error)
	Save(ctx context.Context, s domain.Streak) error
}
