package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"weldtrack/internal/modules/notes/domain"
	notesout "weldtrack/internal/modules/notes/port/out"
	"weldtrack/internal/platform/markdown"
	"weldtrack/internal/platform/slug"
)

// MarkdownJournalWriter mirrors each added note into
// journal/YYYY/MM/DD/HHMMSS-<slug>.md with YAML frontmatter. The journal is
// append-only and best-effort: failures are logged, never surfaced.
type MarkdownJournalWriter struct {
	journalPath string
	log         hclog.Logger
}

func NewMarkdownJournalWriter(journalPath string, log hclog.Logger) notesout.JournalWriter {
	return &MarkdownJournalWriter{journalPath: journalPath, log: log}
}

func (w *MarkdownJournalWriter) Write(_ context.Context, note domain.Note) error {
	date := note.CreatedAt
	dir := filepath.Join(w.journalPath, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.log.Warn("unable to create journal dir, skipping journal entry", "dir", dir, "error", err)
		return nil
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(note.Body))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"id":         note.ID,
		"created_at": note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		"source":     string(note.Source),
		"tags":       note.Tags,
	}
	if note.RelatedID != "" {
		meta["related_id"] = note.RelatedID
		meta["related_title"] = note.RelatedTitle
	}
	body := note.Body + "\n"
	if note.RelatedTitle != "" {
		body = fmt.Sprintf("%s\n\n- About: %s\n", note.Body, note.RelatedTitle)
	}
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		w.log.Warn("unable to render journal entry", "path", path, "error", err)
		return nil
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		w.log.Warn("unable to write journal entry", "path", path, "error", err)
	}
	return nil
}
