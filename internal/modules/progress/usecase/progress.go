package usecase

import (
	"context"

	"github.com/hashicorp/go-hclog"

	catalogin "weldtrack/internal/modules/catalog/port/in"
	"weldtrack/internal/modules/progress/domain"
	"weldtrack/internal/modules/progress/dto"
	progressin "weldtrack/internal/modules/progress/port/in"
	progressout "weldtrack/internal/modules/progress/port/out"
	"weldtrack/internal/modules/progress/service"
	streakin "weldtrack/internal/modules/streak/port/in"
	"weldtrack/internal/platform/notify"
)

type Interactor struct {
	svc       *service.ProgressService
	catalog   catalogin.Usecase
	streak    streakin.Usecase
	projector progressout.CompletionProjector
	hub       *notify.Hub
	log       hclog.Logger
}

func NewInteractor(svc *service.ProgressService, catalog catalogin.Usecase, streak streakin.Usecase, projector progressout.CompletionProjector, hub *notify.Hub, log hclog.Logger) progressin.Usecase {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Interactor{svc: svc, catalog: catalog, streak: streak, projector: projector, hub: hub, log: log}
}

// SetDone marks an item complete or incomplete. Marking done advances the
// streak; un-marking never reverses it.
func (i *Interactor) SetDone(ctx context.Context, input dto.SetDoneInput) error {
	kind := domain.Kind(input.Kind)
	if err := i.svc.SetDone(ctx, kind, input.ID, input.Done); err != nil {
		return err
	}
	if i.projector != nil {
		if err := i.projector.SetDone(ctx, kind, input.ID, input.Done); err != nil {
			i.log.Warn("project completion", "id", input.ID, "error", err)
		}
	}
	if input.Done && i.streak != nil {
		if _, err := i.streak.Advance(ctx, string(kind)); err != nil {
			return err
		}
	}
	if i.hub != nil {
		i.hub.Publish(notify.TopicProgress)
	}
	return nil
}

func (i *Interactor) PercentComplete(ctx context.Context, kind string) (float64, error) {
	k := domain.Kind(kind)
	if err := k.Validate(); err != nil {
		return 0, err
	}
	itemIDs, err := i.itemIDs(ctx, k)
	if err != nil {
		return 0, err
	}
	completion, err := i.svc.Snapshot(ctx, k)
	if err != nil {
		return 0, err
	}
	return domain.Percent(completion.Done(itemIDs), len(itemIDs)), nil
}

func (i *Interactor) OverallPercent(ctx context.Context) (float64, error) {
	reading, err := i.PercentComplete(ctx, string(domain.KindReading))
	if err != nil {
		return 0, err
	}
	practice, err := i.PercentComplete(ctx, string(domain.KindPractice))
	if err != nil {
		return 0, err
	}
	return domain.Overall(reading, practice), nil
}

func (i *Interactor) ResetReadings(ctx context.Context) error {
	if err := i.svc.ResetReadings(ctx); err != nil {
		return err
	}
	if i.projector != nil {
		if err := i.projector.ResetKind(ctx, domain.KindReading); err != nil {
			i.log.Warn("reset completion projection", "kind", domain.KindReading, "error", err)
		}
	}
	if i.hub != nil {
		i.hub.Publish(notify.TopicProgress)
	}
	return nil
}

func (i *Interactor) Stats(ctx context.Context) ([]dto.KindStatsOutput, error) {
	if i.projector == nil {
		return nil, nil
	}
	stats, err := i.projector.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KindStatsOutput, 0, len(stats))
	for _, row := range stats {
		out = append(out, dto.KindStatsOutput{
			Kind:    string(row.Kind),
			Done:    row.Done,
			Total:   row.Total,
			Percent: domain.Percent(row.Done, row.Total),
		})
	}
	return out, nil
}

func (i *Interactor) Snapshot(ctx context.Context, kind string) (map[string]bool, error) {
	completion, err := i.svc.Snapshot(ctx, domain.Kind(kind))
	if err != nil {
		return nil, err
	}
	return completion, nil
}

func (i *Interactor) Replace(ctx context.Context, kind string, m map[string]bool) error {
	k := domain.Kind(kind)
	if err := i.svc.Replace(ctx, k, domain.CompletionMap(m)); err != nil {
		return err
	}
	i.reproject(ctx, k)
	return nil
}

// reproject rebuilds one kind's completion rows from the stored map after a
// wholesale replace, so the stats read model never reports pre-replace flags.
func (i *Interactor) reproject(ctx context.Context, kind domain.Kind) {
	if i.projector == nil {
		return
	}
	if err := i.projector.ResetKind(ctx, kind); err != nil {
		i.log.Warn("reset completion projection", "kind", kind, "error", err)
		return
	}
	snapshot, err := i.svc.Snapshot(ctx, kind)
	if err != nil {
		i.log.Warn("snapshot completion for projection", "kind", kind, "error", err)
		return
	}
	for itemID, done := range snapshot {
		if err := i.projector.SetDone(ctx, kind, itemID, done); err != nil {
			i.log.Warn("project completion", "id", itemID, "error", err)
		}
	}
}

func (i *Interactor) itemIDs(ctx context.Context, kind domain.Kind) ([]string, error) {
	if kind == domain.KindPractice {
		items, err := i.catalog.ListPractice(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		return ids, nil
	}
	items, err := i.catalog.ListReadings(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids, nil
}
