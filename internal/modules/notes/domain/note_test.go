package domain_test

import (
	"errors"
	"testing"
	"time"

	"weldtrack/internal/modules/notes/domain"
	apperrors "weldtrack/internal/platform/errors"
)

func TestNormalizeSource(t *testing.T) {
	t.Parallel()
	if got := domain.NormalizeSource("reading"); got != domain.SourceReading {
		t.Fatalf("expected reading, got %q", got)
	}
	if got := domain.NormalizeSource("journal"); got != domain.SourceGeneral {
		t.Fatalf("unknown source should map to general, got %q", got)
	}
	if got := domain.NormalizeSource(""); got != domain.SourceGeneral {
		t.Fatalf("empty source should map to general, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	note := domain.Note{Body: "   "}
	if err := note.Validate(); !errors.Is(err, apperrors.ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
	note.Body = "steady hands today"
	if err := note.Validate(); err != nil {
		t.Fatalf("non-empty body should validate: %v", err)
	}
}

func TestSortNewestFirstStable(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	notes := []domain.Note{
		{ID: "newest", Body: "b", CreatedAt: at},
		{ID: "tied-head", Body: "b", CreatedAt: at.Add(-time.Hour)},
		{ID: "tied-tail", Body: "b", CreatedAt: at.Add(-time.Hour)},
		{ID: "oldest", Body: "b", CreatedAt: at.Add(-2 * time.Hour)},
	}
	domain.SortNewestFirst(notes)
	want := []string{"newest", "tied-head", "tied-tail", "oldest"}
	for i, id := range want {
		if notes[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, notes[i].ID)
		}
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	raw := []domain.Note{
		{ID: "keep", Body: "fine", CreatedAt: at, Source: "reading", RelatedID: "mig-basics", RelatedTitle: "Intro to MIG Welding Parameters", Tags: []string{"process", "process"}},
		{ID: "", Body: "no id", CreatedAt: at},
		{ID: "no-body", Body: "  ", CreatedAt: at},
		{ID: "no-time", Body: "fine"},
		{ID: "half-pair", Body: "fine", CreatedAt: at, RelatedID: "mig-basics"},
		{ID: "odd-source", Body: "fine", CreatedAt: at, Source: "whatever"},
	}
	out := domain.Sanitize(raw)
	if len(out) != 3 {
		t.Fatalf("expected 3 surviving notes, got %d", len(out))
	}
	if out[0].ID != "keep" || len(out[0].Tags) != 1 {
		t.Fatalf("valid note should survive with deduplicated tags: %#v", out[0])
	}
	if out[1].RelatedID != "" || out[1].RelatedTitle != "" {
		t.Fatalf("half-present related pair should be cleared: %#v", out[1])
	}
	if out[2].Source != domain.SourceGeneral {
		t.Fatalf("unknown source should normalize to general: %#v", out[2])
	}
}
