package in

import (
	"context"

	"weldtrack/internal/modules/progress/dto"
)

type Usecase interface {
	SetDone(ctx context.Context, input dto.SetDoneInput) error
	PercentComplete(ctx context.Context, kind string) (float64, error)
	OverallPercent(ctx context.Context) (float64, error)
	ResetReadings(ctx context.Context) error
	Stats(ctx context.Context) ([]dto.KindStatsOutput, error)

	// Snapshot and Replace are the backup codec's entry points. Replace
	// does not notify; the importing caller owns the single re-render.
	Snapshot(ctx context.Context, kind string) (map[string]bool, error)
	Replace(ctx context.Context, kind string, m map[string]bool) error
}
