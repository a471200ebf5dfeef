package usecase

import (
	"context"

	"weldtrack/internal/modules/backup/domain"
	"weldtrack/internal/modules/backup/dto"
	catalogdto "weldtrack/internal/modules/catalog/dto"
	catalogin "weldtrack/internal/modules/catalog/port/in"
	notesdto "weldtrack/internal/modules/notes/dto"
	notesin "weldtrack/internal/modules/notes/port/in"
	progressin "weldtrack/internal/modules/progress/port/in"
	streakdto "weldtrack/internal/modules/streak/dto"
	streakin "weldtrack/internal/modules/streak/port/in"
	"weldtrack/internal/platform/clock"
	"weldtrack/internal/platform/notify"
)

// Interactor composes the four state silos into a single export/import
// surface. It holds no storage of its own.
type Interactor struct {
	catalog  catalogin.Usecase
	progress progressin.Usecase
	notes    notesin.Usecase
	streak   streakin.Usecase
	clock    clock.Clock
	hub      *notify.Hub
}

func NewInteractor(
	catalog catalogin.Usecase,
	progress progressin.Usecase,
	notes notesin.Usecase,
	streak streakin.Usecase,
	clk clock.Clock,
	hub *notify.Hub,
) *Interactor {
	return &Interactor{
		catalog:  catalog,
		progress: progress,
		notes:    notes,
		streak:   streak,
		clock:    clk,
		hub:      hub,
	}
}

func (i *Interactor) Export(ctx context.Context) (dto.ExportOutput, error) {
	readings, err := i.progress.Snapshot(ctx, "reading")
	if err != nil {
		return dto.ExportOutput{}, err
	}
	practice, err := i.progress.Snapshot(ctx, "practice")
	if err != nil {
		return dto.ExportOutput{}, err
	}
	notes, err := i.notes.List(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	streak, err := i.streak.Current(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	custom, err := i.catalog.ListCustom(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}

	now := i.clock.Now()
	snapshot := domain.Snapshot{
		Version:    domain.Version,
		ExportedAt: now,
		Data: domain.Payload{
			Readings:       readings,
			Practice:       practice,
			Notes:          toNoteRecords(notes),
			Streak:         domain.StreakRecord(streak),
			CustomReadings: toReadingRecords(custom),
		},
	}
	payload, err := domain.Encode(snapshot)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Payload: payload, ExportedAt: now}, nil
}

// Import decodes first and replaces second, so a rejected payload leaves
// every silo untouched. Silo Replace calls are silent; one TopicAll at the
// end covers the whole swap.
func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) error {
	snapshot, err := domain.Decode(input.Payload)
	if err != nil {
		return err
	}

	if err := i.progress.Replace(ctx, "reading", snapshot.Data.Readings); err != nil {
		return err
	}
	if err := i.progress.Replace(ctx, "practice", snapshot.Data.Practice); err != nil {
		return err
	}
	if err := i.catalog.ReplaceCustom(ctx, fromReadingRecords(snapshot.Data.CustomReadings)); err != nil {
		return err
	}
	if err := i.notes.Replace(ctx, fromNoteRecords(snapshot.Data.Notes)); err != nil {
		return err
	}
	if err := i.streak.Replace(ctx, streakdto.StreakOutput(snapshot.Data.Streak)); err != nil {
		return err
	}

	if i.hub != nil {
		i.hub.Publish(notify.TopicAll)
	}
	return nil
}

func toNoteRecords(notes []notesdto.NoteOutput) []domain.NoteRecord {
	out := make([]domain.NoteRecord, 0, len(notes))
	for _, n := range notes {
		out = append(out, domain.NoteRecord{
			ID:           n.ID,
			Body:         n.Body,
			CreatedAt:    n.CreatedAt,
			Source:       n.Source,
			RelatedID:    n.RelatedID,
			RelatedTitle: n.RelatedTitle,
			Tags:         n.Tags,
		})
	}
	return out
}

func fromNoteRecords(records []domain.NoteRecord) []notesdto.NoteOutput {
	out := make([]notesdto.NoteOutput, 0, len(records))
	for _, r := range records {
		out = append(out, notesdto.NoteOutput{
			ID:           r.ID,
			Body:         r.Body,
			CreatedAt:    r.CreatedAt,
			Source:       r.Source,
			RelatedID:    r.RelatedID,
			RelatedTitle: r.RelatedTitle,
			Tags:         r.Tags,
		})
	}
	return out
}

func toReadingRecords(items []catalogdto.ReadingOutput) []domain.ReadingRecord {
	out := make([]domain.ReadingRecord, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ReadingRecord(item))
	}
	return out
}

func fromReadingRecords(records []domain.ReadingRecord) []catalogdto.ReadingOutput {
	out := make([]catalogdto.ReadingOutput, 0, len(records))
	for _, r := range records {
		out = append(out, catalogdto.ReadingOutput(r))
	}
	return out
}
