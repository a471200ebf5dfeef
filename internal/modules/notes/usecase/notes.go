package usecase

import (
	"context"

	catalogin "weldtrack/internal/modules/catalog/port/in"
	"weldtrack/internal/modules/notes/domain"
	"weldtrack/internal/modules/notes/dto"
	notesin "weldtrack/internal/modules/notes/port/in"
	"weldtrack/internal/modules/notes/service"
	streakin "weldtrack/internal/modules/streak/port/in"
	"weldtrack/internal/platform/notify"
)

type Interactor struct {
	svc     *service.NotesService
	catalog catalogin.Usecase
	streak  streakin.Usecase
	hub     *notify.Hub
}

func NewInteractor(svc *service.NotesService, catalog catalogin.Usecase, streak streakin.Usecase, hub *notify.Hub) notesin.Usecase {
	return &Interactor{svc: svc, catalog: catalog, streak: streak, hub: hub}
}

// AddNote resolves the related catalog item (when one is named and still
// exists), freezes its title and derived tags onto the note, persists, and
// credits the streak.
func (i *Interactor) AddNote(ctx context.Context, input dto.AddNoteInput) (dto.NoteOutput, error) {
	source := domain.NormalizeSource(input.Source)
	relatedID, relatedTitle, derived := i.resolveContext(ctx, source, input.RelatedID)
	tags := append(append([]string{}, input.Tags...), derived...)

	note, err := i.svc.Add(ctx, input.Body, source, relatedID, relatedTitle, dedup(tags))
	if err != nil {
		return dto.NoteOutput{}, err
	}
	if i.streak != nil {
		if _, err := i.streak.Advance(ctx, "note"); err != nil {
			return dto.NoteOutput{}, err
		}
	}
	i.publish()
	return toOutput(note), nil
}

func (i *Interactor) RemoveNote(ctx context.Context, noteID string) error {
	if err := i.svc.Remove(ctx, noteID); err != nil {
		return err
	}
	i.publish()
	return nil
}

func (i *Interactor) ClearNotes(ctx context.Context) error {
	if err := i.svc.Clear(ctx); err != nil {
		return err
	}
	i.publish()
	return nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.NoteOutput, error) {
	notes, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, toOutput(note))
	}
	return out, nil
}

func (i *Interactor) Replace(ctx context.Context, notes []dto.NoteOutput) error {
	converted := make([]domain.Note, 0, len(notes))
	for _, note := range notes {
		converted = append(converted, domain.Note{
			ID:           note.ID,
			Body:         note.Body,
			CreatedAt:    note.CreatedAt,
			Source:       domain.Source(note.Source),
			RelatedID:    note.RelatedID,
			RelatedTitle: note.RelatedTitle,
			Tags:         note.Tags,
		})
	}
	return i.svc.Replace(ctx, converted)
}

// resolveContext captures the related item's title and tag context at
// creation time. A related id that no longer resolves yields a plain note.
func (i *Interactor) resolveContext(ctx context.Context, source domain.Source, relatedID string) (string, string, []string) {
	if relatedID == "" || i.catalog == nil {
		return "", "", nil
	}
	switch source {
	case domain.SourceReading:
		items, err := i.catalog.ListReadings(ctx)
		if err != nil {
			return "", "", nil
		}
		for _, item := range items {
			if item.ID == relatedID {
				derived := append([]string{}, item.Tags...)
				if item.Category != "" {
					derived = append(derived, item.Category)
				}
				return item.ID, item.Title, derived
			}
		}
	case domain.SourcePractice:
		items, err := i.catalog.ListPractice(ctx)
		if err != nil {
			return "", "", nil
		}
		for _, item := range items {
			if item.ID == relatedID {
				return item.ID, item.Title, []string{item.Focus}
			}
		}
	}
	return "", "", nil
}

func (i *Interactor) publish() {
	if i.hub != nil {
		i.hub.Publish(notify.TopicNotes)
	}
}

func toOutput(note domain.Note) dto.NoteOutput {
	return dto.NoteOutput{
		ID:           note.ID,
		Body:         note.Body,
		CreatedAt:    note.CreatedAt,
		Source:       string(note.Source),
		RelatedID:    note.RelatedID,
		RelatedTitle: note.RelatedTitle,
		Tags:         note.Tags,
	}
}

func dedup(tags []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
