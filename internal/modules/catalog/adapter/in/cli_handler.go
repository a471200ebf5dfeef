package in

import (
	"context"
	"strings"

	"weldtrack/internal/modules/catalog/domain"
	"weldtrack/internal/modules/catalog/dto"
	catalogin "weldtrack/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListReadings(ctx context.Context) ([]dto.ReadingOutput, error) {
	return h.usecase.ListReadings(ctx)
}

func (h CLIHandler) ListPractice(ctx context.Context) ([]dto.PracticeOutput, error) {
	return h.usecase.ListPractice(ctx)
}

// ListReadingsFiltered narrows the reading list by a filter value from
// FilterValues. Unknown values simply match nothing rather than erroring.
func (h CLIHandler) ListReadingsFiltered(ctx context.Context, filter string) ([]dto.ReadingOutput, error) {
	items, err := h.usecase.ListReadings(ctx)
	if err != nil {
		return nil, err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))
	out := []dto.ReadingOutput{}
	for _, item := range items {
		probe := domain.ReadingItem{
			Category: item.Category,
			Type:     item.Type,
			Tags:     item.Tags,
			Origin:   domain.Origin(item.Origin),
		}
		if probe.MatchesFilter(filter) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (h CLIHandler) AddCustomReading(ctx context.Context, title, link, description, category string) (dto.ReadingOutput, error) {
	return h.usecase.AddCustomReading(ctx, dto.AddReadingInput{
		Title:       title,
		Link:        link,
		Description: description,
		Category:    category,
	})
}

func (h CLIHandler) RemoveCustomReading(ctx context.Context, id string) error {
	return h.usecase.RemoveCustomReading(ctx, id)
}

func (h CLIHandler) ClearCustomReadings(ctx context.Context) error {
	return h.usecase.ClearCustomReadings(ctx)
}

func (h CLIHandler) FilterValues(ctx context.Context) ([]string, error) {
	return h.usecase.FilterValues(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
