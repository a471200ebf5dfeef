package in

import (
	"context"

	"weldtrack/internal/modules/notes/dto"
	notesin "weldtrack/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddNote(ctx context.Context, body, source, relatedID string, tags []string) (dto.NoteOutput, error) {
	return h.usecase.AddNote(ctx, dto.AddNoteInput{Body: body, Source: source, RelatedID: relatedID, Tags: tags})
}

func (h CLIHandler) RemoveNote(ctx context.Context, id string) error {
	return h.usecase.RemoveNote(ctx, id)
}

func (h CLIHandler) ClearNotes(ctx context.Context) error {
	return h.usecase.ClearNotes(ctx)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.NoteOutput, error) {
	return h.usecase.List(ctx)
}
