package usecase_test

import (
	"context"
	"testing"
	"time"

	"weldtrack/internal/modules/streak/domain"
	"weldtrack/internal/modules/streak/dto"
	"weldtrack/internal/modules/streak/service"
	"weldtrack/internal/modules/streak/usecase"
	"weldtrack/internal/platform/notify"
)

type memoryStreakStore struct {
	streak domain.Streak
}

func (m *memoryStreakStore) Load(context.Context) (domain.Streak, error) {
	return m.streak, nil
}

func (m *memoryStreakStore) Save(_ context.Context, s domain.Streak) error {
	m.streak = s
	return nil
}

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

func TestAdvancePersistsAndNotifies(t *testing.T) {
	t.Parallel()
	store := &memoryStreakStore{streak: domain.Streak{Count: 2, Date: "2024-01-09", Types: []string{"reading"}}}
	hub := notify.NewHub()
	topics := []notify.Topic{}
	hub.Subscribe(func(topic notify.Topic) { topics = append(topics, topic) })
	clk := fixedClock{at: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewStreakService(clk, store), hub)

	out, err := uc.Advance(context.Background(), "practice")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if out.Count != 3 || out.Date != "2024-01-10" {
		t.Fatalf("consecutive day should grow the streak: %+v", out)
	}
	if store.streak.Count != 3 {
		t.Fatalf("streak not persisted: %+v", store.streak)
	}
	if len(topics) != 1 || topics[0] != notify.TopicStreak {
		t.Fatalf("topics = %v, want one streak notification", topics)
	}
}

func TestCurrentNormalizesStoredState(t *testing.T) {
	t.Parallel()
	store := &memoryStreakStore{streak: domain.Streak{Count: -4, Date: "not a date", Types: []string{"", "reading", "reading"}}}
	uc := usecase.NewInteractor(service.NewStreakService(fixedClock{at: time.Now()}, store), nil)

	out, err := uc.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.Count != 0 || out.Date != "" || len(out.Types) != 1 {
		t.Fatalf("stored junk should normalize: %+v", out)
	}
}

func TestReplaceIsSilent(t *testing.T) {
	t.Parallel()
	store := &memoryStreakStore{}
	hub := notify.NewHub()
	published := 0
	hub.Subscribe(func(notify.Topic) { published++ })
	uc := usecase.NewInteractor(service.NewStreakService(fixedClock{at: time.Now()}, store), hub)

	if err := uc.Replace(context.Background(), dto.StreakOutput{Count: 5, Date: "2024-01-10", Types: []string{"note"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if store.streak.Count != 5 {
		t.Fatalf("streak not replaced: %+v", store.streak)
	}
	if published != 0 {
		t.Fatalf("restore should not notify, got %d notifications", published)
	}
}
