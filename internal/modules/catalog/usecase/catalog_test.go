package usecase_test

import (
	"context"
	"testing"

	catalogadapter "weldtrack/internal/modules/catalog/adapter/out"
	"weldtrack/internal/modules/catalog/domain"
	"weldtrack/internal/modules/catalog/dto"
	"weldtrack/internal/modules/catalog/service"
	"weldtrack/internal/modules/catalog/usecase"
	progressdomain "weldtrack/internal/modules/progress/domain"
	"weldtrack/internal/platform/notify"
)

type memoryStore struct {
	items []domain.ReadingItem
}

func (m *memoryStore) Load(context.Context) ([]domain.ReadingItem, error) {
	return append([]domain.ReadingItem(nil), m.items...), nil
}

func (m *memoryStore) Save(_ context.Context, items []domain.ReadingItem) error {
	m.items = append([]domain.ReadingItem(nil), items...)
	return nil
}

type fixedIDs struct{ id string }

func (f fixedIDs) New() string { return f.id }

type recordingProjector struct {
	resets   int
	readings []string
	practice []string
	removed  []string
}

func (p *recordingProjector) Reset(context.Context) error {
	p.resets++
	p.readings = nil
	p.practice = nil
	return nil
}

func (p *recordingProjector) UpsertReading(_ context.Context, item domain.ReadingItem) error {
	p.readings = append(p.readings, item.ID)
	return nil
}

func (p *recordingProjector) UpsertPractice(_ context.Context, item domain.PracticeItem) error {
	p.practice = append(p.practice, item.ID)
	return nil
}

func (p *recordingProjector) Remove(_ context.Context, itemID string) error {
	p.removed = append(p.removed, itemID)
	return nil
}

type recordingCascade struct {
	forgotten    []string
	prefixSweeps int
}

func (c *recordingCascade) ForgetReadings(_ context.Context, ids []string) error {
	c.forgotten = append(c.forgotten, ids...)
	return nil
}

func (c *recordingCascade) ForgetCustomPrefixed(context.Context) error {
	c.prefixSweeps++
	return nil
}

func TestAddCustomReadingProjectsAndNotifies(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	projector := &recordingProjector{}
	hub := notify.NewHub()
	topics := []notify.Topic{}
	hub.Subscribe(func(topic notify.Topic) { topics = append(topics, topic) })

	uc := usecase.NewInteractor(service.NewCatalogService(fixedIDs{id: "custom-1"}, store), projector, &recordingCascade{}, hub, nil)
	out, err := uc.AddCustomReading(context.Background(), dto.AddReadingInput{Title: "Pulse MIG", Link: "example.com/pulse"})
	if err != nil {
		t.Fatalf("add custom reading: %v", err)
	}
	if out.ID != "custom-1" || out.Origin != "custom" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(projector.readings) != 1 || projector.readings[0] != "custom-1" {
		t.Fatalf("item not projected: %v", projector.readings)
	}
	if len(topics) != 1 || topics[0] != notify.TopicCatalog {
		t.Fatalf("topics = %v, want one catalog notification", topics)
	}
}

func TestRemoveCustomReadingCascades(t *testing.T) {
	t.Parallel()
	store := &memoryStore{items: []domain.ReadingItem{{ID: "custom-1", Title: "Pulse MIG", Origin: domain.OriginCustom}}}
	projector := &recordingProjector{}
	cascade := &recordingCascade{}
	hub := notify.NewHub()
	published := 0
	hub.Subscribe(func(notify.Topic) { published++ })

	uc := usecase.NewInteractor(service.NewCatalogService(fixedIDs{id: "x"}, store), projector, cascade, hub, nil)
	ctx := context.Background()

	// Unknown id: nothing happens anywhere.
	if err := uc.RemoveCustomReading(ctx, "custom-nope"); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}
	if len(cascade.forgotten) != 0 || published != 0 {
		t.Fatalf("unknown removal leaked side effects: forgotten=%v published=%d", cascade.forgotten, published)
	}

	if err := uc.RemoveCustomReading(ctx, "custom-1"); err != nil {
		t.Fatalf("remove known: %v", err)
	}
	if len(cascade.forgotten) != 1 || cascade.forgotten[0] != "custom-1" {
		t.Fatalf("completion not cascaded: %v", cascade.forgotten)
	}
	if len(projector.removed) != 1 || projector.removed[0] != "custom-1" {
		t.Fatalf("index row not removed: %v", projector.removed)
	}
	if published != 1 {
		t.Fatalf("expected one notification, got %d", published)
	}
}

func TestReindexRebuildsWholeIndex(t *testing.T) {
	t.Parallel()
	store := &memoryStore{items: []domain.ReadingItem{{ID: "custom-1", Title: "Pulse MIG", Origin: domain.OriginCustom}}}
	projector := &recordingProjector{}
	uc := usecase.NewInteractor(service.NewCatalogService(fixedIDs{id: "x"}, store), projector, nil, nil, nil)

	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 {
		t.Fatalf("expected one reset, got %d", projector.resets)
	}
	wantReadings := len(domain.BuiltinReadings()) + 1
	if len(projector.readings) != wantReadings {
		t.Fatalf("expected %d reading rows, got %d", wantReadings, len(projector.readings))
	}
	if len(projector.practice) != len(domain.BuiltinPractice()) {
		t.Fatalf("expected %d practice rows, got %d", len(domain.BuiltinPractice()), len(projector.practice))
	}
}

func TestReplaceCustomIsSilent(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	hub := notify.NewHub()
	published := 0
	hub.Subscribe(func(notify.Topic) { published++ })
	uc := usecase.NewInteractor(service.NewCatalogService(fixedIDs{id: "x"}, store), &recordingProjector{}, nil, hub, nil)

	err := uc.ReplaceCustom(context.Background(), []dto.ReadingOutput{
		{ID: "custom-1", Title: "Pulse MIG", Origin: "custom"},
	})
	if err != nil {
		t.Fatalf("replace custom: %v", err)
	}
	if len(store.items) != 1 {
		t.Fatalf("custom list not replaced: %v", store.items)
	}
	if published != 0 {
		t.Fatalf("restore should not notify, got %d notifications", published)
	}
}

type memoryCompletion struct {
	m progressdomain.CompletionMap
}

func (s *memoryCompletion) Load(context.Context) (progressdomain.CompletionMap, error) {
	out := progressdomain.CompletionMap{}
	for itemID, done := range s.m {
		out[itemID] = done
	}
	return out, nil
}

func (s *memoryCompletion) Save(_ context.Context, m progressdomain.CompletionMap) error {
	s.m = m
	return nil
}

func TestClearCustomSweepsStaleProgressEntries(t *testing.T) {
	t.Parallel()
	store := &memoryStore{items: []domain.ReadingItem{{ID: "custom-1", Title: "Pulse MIG", Origin: domain.OriginCustom}}}
	// "custom-stale" is a completion flag with no matching custom item.
	completion := &memoryCompletion{m: progressdomain.CompletionMap{
		"mig-basics":   true,
		"custom-1":     true,
		"custom-stale": true,
	}}
	cascade := catalogadapter.NewCompletionCascadeAdapter(completion)
	uc := usecase.NewInteractor(service.NewCatalogService(fixedIDs{id: "x"}, store), nil, cascade, nil, nil)

	if err := uc.ClearCustomReadings(context.Background()); err != nil {
		t.Fatalf("clear custom: %v", err)
	}
	if len(completion.m) != 1 || !completion.m["mig-basics"] {
		t.Fatalf("stale custom entries should not survive a clear: %v", completion.m)
	}
}
