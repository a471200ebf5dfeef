package service

import (
	"context"
	"fmt"
	"strings"

	"weldtrack/internal/modules/notes/domain"
	notesout "weldtrack/internal/modules/notes/port/out"
	"weldtrack/internal/platform/clock"
	"weldtrack/internal/platform/id"
)

type NotesService struct {
	clock   clock.Clock
	idGen   id.Generator
	store   notesout.NoteStore
	journal notesout.JournalWriter
}

func NewNotesService(clock clock.Clock, idGen id.Generator, store notesout.NoteStore, journal notesout.JournalWriter) *NotesService {
	return &NotesService{clock: clock, idGen: idGen, store: store, journal: journal}
}

// Add validates and head-inserts a new note. The related context arrives
// already resolved and is stored frozen.
func (s *NotesService) Add(ctx context.Context, body string, source domain.Source, relatedID, relatedTitle string, tags []string) (domain.Note, error) {
	note := domain.Note{
		ID:           s.idGen.New(),
		Body:         strings.TrimSpace(body),
		CreatedAt:    s.clock.Now(),
		Source:       source,
		RelatedID:    relatedID,
		RelatedTitle: relatedTitle,
		Tags:         tags,
	}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	if note.RelatedID == "" || note.RelatedTitle == "" {
		note.RelatedID = ""
		note.RelatedTitle = ""
	}
	notes, err := s.store.Load(ctx)
	if err != nil {
		return domain.Note{}, fmt.Errorf("load notes: %w", err)
	}
	notes = append([]domain.Note{note}, notes...)
	if err := s.store.Save(ctx, notes); err != nil {
		return domain.Note{}, fmt.Errorf("save notes: %w", err)
	}
	if s.journal != nil {
		_ = s.journal.Write(ctx, note)
	}
	return note, nil
}

// Remove deletes by id; an unknown id is a no-op.
func (s *NotesService) Remove(ctx context.Context, noteID string) error {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	kept := notes[:0]
	removed := false
	for _, note := range notes {
		if note.ID == noteID {
			removed = true
			continue
		}
		kept = append(kept, note)
	}
	if !removed {
		return nil
	}
	if err := s.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (s *NotesService) Clear(ctx context.Context) error {
	if err := s.store.Save(ctx, []domain.Note{}); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (s *NotesService) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	domain.SortNewestFirst(notes)
	return notes, nil
}

// Replace overwrites the stored list with sanitized imported notes.
func (s *NotesService) Replace(ctx context.Context, notes []domain.Note) error {
	sanitized := domain.Sanitize(notes)
	domain.SortNewestFirst(sanitized)
	if err := s.store.Save(ctx, sanitized); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}
