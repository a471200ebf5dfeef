package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	notesout "weldtrack/internal/modules/notes/adapter/out"
	"weldtrack/internal/modules/notes/domain"
	"weldtrack/internal/platform/logging"
)

func TestJournalWriterLaysOutByDate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writer := notesout.NewMarkdownJournalWriter(dir, logging.Discard())

	note := domain.Note{
		ID:           "note-1",
		Body:         "Lap joint drill went well",
		CreatedAt:    time.Date(2024, 1, 10, 8, 30, 15, 0, time.UTC),
		Source:       domain.SourcePractice,
		RelatedID:    "lap-joint",
		RelatedTitle: "Lap Joint Practice",
		Tags:         []string{"lap joints"},
	}
	if err := writer.Write(context.Background(), note); err != nil {
		t.Fatalf("write journal entry: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "2024", "01", "10"))
	if err != nil {
		t.Fatalf("read journal day dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "083015-") || !strings.HasSuffix(name, ".md") {
		t.Fatalf("unexpected entry name %q", name)
	}

	payload, err := os.ReadFile(filepath.Join(dir, "2024", "01", "10", name))
	if err != nil {
		t.Fatalf("read journal entry: %v", err)
	}
	content := string(payload)
	if !strings.HasPrefix(content, "---\n") {
		t.Fatalf("entry missing frontmatter: %q", content)
	}
	for _, want := range []string{"id: note-1", "source: practice", "Lap joint drill went well", "About: Lap Joint Practice"} {
		if !strings.Contains(content, want) {
			t.Fatalf("entry missing %q:\n%s", want, content)
		}
	}
}

func TestJournalWriterNeverFailsOnBadDir(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	blocked := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocked, []byte("a file, not a dir"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	writer := notesout.NewMarkdownJournalWriter(blocked, logging.Discard())
	err := writer.Write(context.Background(), domain.Note{
		ID:        "note-1",
		Body:      "whatever",
		CreatedAt: time.Now(),
		Source:    domain.SourceGeneral,
	})
	if err != nil {
		t.Fatalf("journal write should be best-effort, got %v", err)
	}
}
