package out

import (
	"context"

	"weldtrack/internal/modules/notes/domain"
)

// NoteStore persists the note list as a whole value, newest first.
type NoteStore interface {
	Load(ctx context.Context) ([]domain.Note, error)
	Save(ctx context.Context, notes []domain.Note) error

	// MigrateLegacy upgrades the old single-string note storage into a
	// structured entry exactly once; later calls are no-ops. Run at
	// process start, not on every read.
	MigrateLegacy(ctx context.Context) error
}

// JournalWriter renders an added note as a markdown document in the journal
// directory. Failures are absorbed by the adapter; the journal is a
// convenience mirror, not the source of truth.
type JournalWriter interface {
	Write(ctx context.Context, note domain.Note) error
}
