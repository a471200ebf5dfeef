package in

import (
	"context"

	"weldtrack/internal/modules/streak/dto"
)

type Usecase interface {
	// Advance credits one qualifying action (reading, practice, note) on
	// the current day and returns the resulting streak.
	Advance(ctx context.Context, actionType string) (dto.StreakOutput, error)
	Current(ctx context.Context) (dto.StreakOutput, error)

	// Replace is the backup codec's restore entry point; it normalizes and
	// overwrites without notifying.
	Replace(ctx context.Context, streak dto.StreakOutput) error
}
