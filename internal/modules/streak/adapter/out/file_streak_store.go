package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"weldtrack/internal/modules/streak/domain"
	streakout "weldtrack/internal/modules/streak/port/out"
)

// FileStreakStore keeps the streak record in streak.json. A missing or
// corrupt file reads as the zero streak.
type FileStreakStore struct {
	path string
	log  hclog.Logger
	mu   sync.Mutex
}

func NewFileStreakStore(statePath string, log hclog.Logger) streakout.StreakStore {
	return &FileStreakStore{path: filepath.Join(statePath, "streak.json"), log: log}
}

func (s *FileStreakStore) Load(_ context.Context) (domain.Streak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("unable to read streak, starting fresh", "path", s.path, "error", err)
		}
		return domain.Streak{}, nil
	}
	streak := domain.Streak{}
	if err := json.Unmarshal(payload, &streak); err != nil {
		s.log.Warn("unable to parse streak, starting fresh", "path", s.path, "error", err)
		return domain.Streak{}, nil
	}
	return streak, nil
}

func (s *FileStreakStore) Save(_ context.Context, streak domain.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.MarshalIndent(streak, "", "  ")
	if err != nil {
		return fmt.Errorf("encode streak: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Warn("unable to create state dir, keeping in-memory streak", "path", s.path, "error", err)
		return nil
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		s.log.Warn("unable to persist streak, keeping in-memory state", "path", s.path, "error", err)
	}
	return nil
}
