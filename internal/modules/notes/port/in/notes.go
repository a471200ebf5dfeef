package in

import (
	"context"

	"weldtrack/internal/modules/notes/dto"
)

type Usecase interface {
	AddNote(ctx context.Context, input dto.AddNoteInput) (dto.NoteOutput, error)
	RemoveNote(ctx context.Context, id string) error
	ClearNotes(ctx context.Context) error
	List(ctx context.Context) ([]dto.NoteOutput, error)

	// Replace is the backup codec's restore entry point: imported notes
	// run through the same sanitization as stored ones, silently dropping
	// malformed entries, and no notification is published.
	Replace(ctx context.Context, notes []dto.NoteOutput) error
}
