package usecase

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"weldtrack/internal/modules/catalog/domain"
	"weldtrack/internal/modules/catalog/dto"
	catalogin "weldtrack/internal/modules/catalog/port/in"
	catalogout "weldtrack/internal/modules/catalog/port/out"
	"weldtrack/internal/modules/catalog/service"
	"weldtrack/internal/platform/notify"
)

type Interactor struct {
	svc       *service.CatalogService
	projector catalogout.ItemIndexProjector
	cascade   catalogout.ProgressCascade
	hub       *notify.Hub
	log       hclog.Logger
}

func NewInteractor(svc *service.CatalogService, projector catalogout.ItemIndexProjector, cascade catalogout.ProgressCascade, hub *notify.Hub, log hclog.Logger) catalogin.Usecase {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Interactor{svc: svc, projector: projector, cascade: cascade, hub: hub, log: log}
}

func (i *Interactor) ListReadings(ctx context.Context) ([]dto.ReadingOutput, error) {
	items, err := i.svc.ListReadings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReadingOutput, 0, len(items))
	for _, item := range items {
		out = append(out, toReadingOutput(item))
	}
	return out, nil
}

func (i *Interactor) ListPractice(ctx context.Context) ([]dto.PracticeOutput, error) {
	items := i.svc.ListPractice(ctx)
	out := make([]dto.PracticeOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.PracticeOutput{ID: item.ID, Title: item.Title, Description: item.Description, Focus: item.Focus})
	}
	return out, nil
}

func (i *Interactor) ListCustom(ctx context.Context) ([]dto.ReadingOutput, error) {
	items, err := i.svc.ListCustom(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReadingOutput, 0, len(items))
	for _, item := range items {
		out = append(out, toReadingOutput(item))
	}
	return out, nil
}

func (i *Interactor) AddCustomReading(ctx context.Context, input dto.AddReadingInput) (dto.ReadingOutput, error) {
	item, err := i.svc.AddCustom(ctx, input.Title, input.Link, input.Description, input.Category)
	if err != nil {
		return dto.ReadingOutput{}, err
	}
	if i.projector != nil {
		if err := i.projector.UpsertReading(ctx, item); err != nil {
			i.log.Warn("project reading", "id", item.ID, "error", err)
		}
	}
	i.publish()
	return toReadingOutput(item), nil
}

func (i *Interactor) RemoveCustomReading(ctx context.Context, itemID string) error {
	removed, err := i.svc.RemoveCustom(ctx, itemID)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	if i.cascade != nil {
		if err := i.cascade.ForgetReadings(ctx, []string{itemID}); err != nil {
			return err
		}
	}
	if i.projector != nil {
		if err := i.projector.Remove(ctx, itemID); err != nil {
			i.log.Warn("remove projected reading", "id", itemID, "error", err)
		}
	}
	i.publish()
	return nil
}

func (i *Interactor) ClearCustomReadings(ctx context.Context) error {
	ids, err := i.svc.ClearCustom(ctx)
	if err != nil {
		return err
	}
	if i.cascade != nil {
		// The sweep goes by id prefix, not by the removed ids: stale
		// custom entries can outlive the custom list, e.g. after an
		// import whose list no longer carries the item.
		if err := i.cascade.ForgetCustomPrefixed(ctx); err != nil {
			return err
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if i.projector != nil {
		for _, itemID := range ids {
			if err := i.projector.Remove(ctx, itemID); err != nil {
				i.log.Warn("remove projected reading", "id", itemID, "error", err)
			}
		}
	}
	i.publish()
	return nil
}

func (i *Interactor) ReplaceCustom(ctx context.Context, items []dto.ReadingOutput) error {
	converted := make([]domain.ReadingItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, fromReadingOutput(item))
	}
	if err := i.svc.ReplaceCustom(ctx, converted); err != nil {
		return err
	}
	// Restore rewrites the whole list; the index is rebuilt rather than
	// patched. The backup usecase publishes the single change notification.
	return i.Reindex(ctx)
}

func (i *Interactor) FilterValues(ctx context.Context) ([]string, error) {
	return i.svc.FilterValues(ctx)
}

func (i *Interactor) Reindex(ctx context.Context) error {
	if i.projector == nil {
		return nil
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	readings, err := i.svc.ListReadings(ctx)
	if err != nil {
		return err
	}
	for _, item := range readings {
		if err := i.projector.UpsertReading(ctx, item); err != nil {
			return err
		}
	}
	for _, item := range i.svc.ListPractice(ctx) {
		if err := i.projector.UpsertPractice(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) publish() {
	if i.hub != nil {
		i.hub.Publish(notify.TopicCatalog)
	}
}

func toReadingOutput(item domain.ReadingItem) dto.ReadingOutput {
	return dto.ReadingOutput{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Link:        item.Link,
		Type:        item.Type,
		Tags:        item.Tags,
		Origin:      string(item.Origin),
	}
}

func fromReadingOutput(item dto.ReadingOutput) domain.ReadingItem {
	return domain.ReadingItem{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Link:        item.Link,
		Type:        item.Type,
		Tags:        item.Tags,
		Origin:      domain.Origin(item.Origin),
	}
}
