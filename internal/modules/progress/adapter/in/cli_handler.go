package in

import (
	"context"

	"weldtrack/internal/modules/progress/dto"
	progressin "weldtrack/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetDone(ctx context.Context, kind, id string, done bool) error {
	return h.usecase.SetDone(ctx, dto.SetDoneInput{Kind: kind, ID: id, Done: done})
}

func (h CLIHandler) PercentComplete(ctx context.Context, kind string) (float64, error) {
	return h.usecase.PercentComplete(ctx, kind)
}

func (h CLIHandler) OverallPercent(ctx context.Context) (float64, error) {
	return h.usecase.OverallPercent(ctx)
}

func (h CLIHandler) ResetReadings(ctx context.Context) error {
	return h.usecase.ResetReadings(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) ([]dto.KindStatsOutput, error) {
	return h.usecase.Stats(ctx)
}

// Completion returns the done-flag map for one kind, for rendering check
// marks next to catalog listings.
func (h CLIHandler) Completion(ctx context.Context, kind string) (map[string]bool, error) {
	return h.usecase.Snapshot(ctx, kind)
}
