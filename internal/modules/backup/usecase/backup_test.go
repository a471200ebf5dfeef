package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weldtrack/internal/modules/backup/dto"
	"weldtrack/internal/modules/backup/usecase"
	catalogdto "weldtrack/internal/modules/catalog/dto"
	notesdto "weldtrack/internal/modules/notes/dto"
	progressdto "weldtrack/internal/modules/progress/dto"
	streakdto "weldtrack/internal/modules/streak/dto"
	apperrors "weldtrack/internal/platform/errors"
	"weldtrack/internal/platform/notify"
)

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

type fakeCatalog struct {
	custom       []catalogdto.ReadingOutput
	replaceCalls int
}

func (f *fakeCatalog) ListReadings(context.Context) ([]catalogdto.ReadingOutput, error) {
	return nil, nil
}
func (f *fakeCatalog) ListPractice(context.Context) ([]catalogdto.PracticeOutput, error) {
	return nil, nil
}
func (f *fakeCatalog) AddCustomReading(context.Context, catalogdto.AddReadingInput) (catalogdto.ReadingOutput, error) {
	return catalogdto.ReadingOutput{}, nil
}
func (f *fakeCatalog) RemoveCustomReading(context.Context, string) error { return nil }
func (f *fakeCatalog) ClearCustomReadings(context.Context) error         { return nil }
func (f *fakeCatalog) FilterValues(context.Context) ([]string, error)    { return nil, nil }
func (f *fakeCatalog) Reindex(context.Context) error                     { return nil }
func (f *fakeCatalog) ListCustom(context.Context) ([]catalogdto.ReadingOutput, error) {
	return f.custom, nil
}
func (f *fakeCatalog) ReplaceCustom(_ context.Context, items []catalogdto.ReadingOutput) error {
	f.custom = items
	f.replaceCalls++
	return nil
}

type fakeProgress struct {
	byKind       map[string]map[string]bool
	replaceCalls int
}

func (f *fakeProgress) SetDone(context.Context, progressdto.SetDoneInput) error { return nil }
func (f *fakeProgress) PercentComplete(context.Context, string) (float64, error) {
	return 0, nil
}
func (f *fakeProgress) OverallPercent(context.Context) (float64, error) { return 0, nil }
func (f *fakeProgress) ResetReadings(context.Context) error             { return nil }
func (f *fakeProgress) Stats(context.Context) ([]progressdto.KindStatsOutput, error) {
	return nil, nil
}
func (f *fakeProgress) Snapshot(_ context.Context, kind string) (map[string]bool, error) {
	return f.byKind[kind], nil
}
func (f *fakeProgress) Replace(_ context.Context, kind string, m map[string]bool) error {
	if f.byKind == nil {
		f.byKind = map[string]map[string]bool{}
	}
	f.byKind[kind] = m
	f.replaceCalls++
	return nil
}

type fakeNotes struct {
	notes        []notesdto.NoteOutput
	replaceCalls int
}

func (f *fakeNotes) AddNote(context.Context, notesdto.AddNoteInput) (notesdto.NoteOutput, error) {
	return notesdto.NoteOutput{}, nil
}
func (f *fakeNotes) RemoveNote(context.Context, string) error { return nil }
func (f *fakeNotes) ClearNotes(context.Context) error         { return nil }
func (f *fakeNotes) List(context.Context) ([]notesdto.NoteOutput, error) {
	return f.notes, nil
}
func (f *fakeNotes) Replace(_ context.Context, notes []notesdto.NoteOutput) error {
	f.notes = notes
	f.replaceCalls++
	return nil
}

type fakeStreak struct {
	current      streakdto.StreakOutput
	replaceCalls int
}

func (f *fakeStreak) Advance(context.Context, string) (streakdto.StreakOutput, error) {
	return f.current, nil
}
func (f *fakeStreak) Current(context.Context) (streakdto.StreakOutput, error) {
	return f.current, nil
}
func (f *fakeStreak) Replace(_ context.Context, s streakdto.StreakOutput) error {
	f.current = s
	f.replaceCalls++
	return nil
}

func seededSilos() (*fakeCatalog, *fakeProgress, *fakeNotes, *fakeStreak) {
	catalog := &fakeCatalog{custom: []catalogdto.ReadingOutput{{
		ID:     "custom-1",
		Title:  "Pulse MIG overview",
		Link:   "https://example.com/pulse",
		Tags:   []string{"custom"},
		Origin: "custom",
	}}}
	progress := &fakeProgress{byKind: map[string]map[string]bool{
		"reading":  {"mig-basics": true},
		"practice": {"lap-joint": true},
	}}
	notes := &fakeNotes{notes: []notesdto.NoteOutput{{
		ID:        "note-1",
		Body:      "keep the stickout short",
		CreatedAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		Source:    "practice",
		Tags:      []string{"lap joints"},
	}}}
	streak := &fakeStreak{current: streakdto.StreakOutput{
		Count: 2, Date: "2024-01-10", Types: []string{"practice"},
	}}
	return catalog, progress, notes, streak
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	catalog, progress, notes, streak := seededSilos()
	clk := fixedClock{at: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
	source := usecase.NewInteractor(catalog, progress, notes, streak, clk, nil)

	out, err := source.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !out.ExportedAt.Equal(clk.at) {
		t.Fatalf("exported at %v, want clock time", out.ExportedAt)
	}

	freshCatalog := &fakeCatalog{}
	freshProgress := &fakeProgress{}
	freshNotes := &fakeNotes{}
	freshStreak := &fakeStreak{}
	target := usecase.NewInteractor(freshCatalog, freshProgress, freshNotes, freshStreak, clk, nil)
	if err := target.Import(context.Background(), dto.ImportInput{Payload: out.Payload}); err != nil {
		t.Fatalf("import: %v", err)
	}

	if !freshProgress.byKind["reading"]["mig-basics"] || !freshProgress.byKind["practice"]["lap-joint"] {
		t.Fatalf("completion not restored: %v", freshProgress.byKind)
	}
	if len(freshNotes.notes) != 1 || freshNotes.notes[0].Body != "keep the stickout short" {
		t.Fatalf("notes not restored: %v", freshNotes.notes)
	}
	if freshStreak.current.Count != 2 || freshStreak.current.Date != "2024-01-10" {
		t.Fatalf("streak not restored: %+v", freshStreak.current)
	}
	if len(freshCatalog.custom) != 1 || freshCatalog.custom[0].ID != "custom-1" {
		t.Fatalf("custom readings not restored: %v", freshCatalog.custom)
	}
}

func TestImportRejectsBadPayloadWithoutTouchingSilos(t *testing.T) {
	t.Parallel()
	catalog, progress, notes, streak := seededSilos()
	uc := usecase.NewInteractor(catalog, progress, notes, streak, fixedClock{at: time.Now()}, nil)

	err := uc.Import(context.Background(), dto.ImportInput{Payload: []byte(`{"version":1}`)})
	if !errors.Is(err, apperrors.ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}
	total := catalog.replaceCalls + progress.replaceCalls + notes.replaceCalls + streak.replaceCalls
	if total != 0 {
		t.Fatalf("silos touched %d times after a rejected payload", total)
	}
	if len(notes.notes) != 1 {
		t.Fatalf("note list changed: %v", notes.notes)
	}
}

func TestImportPublishesOneNotification(t *testing.T) {
	t.Parallel()
	catalog, progress, notes, streak := seededSilos()
	hub := notify.NewHub()
	topics := []notify.Topic{}
	hub.Subscribe(func(topic notify.Topic) { topics = append(topics, topic) })
	uc := usecase.NewInteractor(catalog, progress, notes, streak, fixedClock{at: time.Now()}, hub)

	payload := []byte(`{"version":1,"data":{}}`)
	if err := uc.Import(context.Background(), dto.ImportInput{Payload: payload}); err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(topics) != 1 || topics[0] != notify.TopicAll {
		t.Fatalf("topics = %v, want exactly one %q", topics, notify.TopicAll)
	}
}
