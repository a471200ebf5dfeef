package in

import (
	"context"

	"weldtrack/internal/modules/catalog/dto"
)

type Usecase interface {
	ListReadings(ctx context.Context) ([]dto.ReadingOutput, error)
	ListPractice(ctx context.Context) ([]dto.PracticeOutput, error)
	AddCustomReading(ctx context.Context, input dto.AddReadingInput) (dto.ReadingOutput, error)
	RemoveCustomReading(ctx context.Context, id string) error
	ClearCustomReadings(ctx context.Context) error
	FilterValues(ctx context.Context) ([]string, error)
	Reindex(ctx context.Context) error

	// ListCustom and ReplaceCustom are the backup codec's view of the
	// catalog: only user-added items are portable state.
	ListCustom(ctx context.Context) ([]dto.ReadingOutput, error)
	ReplaceCustom(ctx context.Context, items []dto.ReadingOutput) error
}
