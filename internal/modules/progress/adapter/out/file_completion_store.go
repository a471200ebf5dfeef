package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"weldtrack/internal/modules/progress/domain"
	progressout "weldtrack/internal/modules/progress/port/out"
)

// FileCompletionStore persists a single completion map as JSON, one file per
// kind (reading-progress.json, practice-progress.json). Reads fail soft to an
// empty map; write failures are logged and the in-memory session continues.
type FileCompletionStore struct {
	path string
	log  hclog.Logger
	mu   sync.Mutex
}

func NewFileCompletionStore(statePath string, kind domain.Kind, log hclog.Logger) progressout.CompletionStore {
	return &FileCompletionStore{path: filepath.Join(statePath, string(kind)+"-progress.json"), log: log}
}

func (s *FileCompletionStore) Load(_ context.Context) (domain.CompletionMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("unable to read progress, treating as empty", "path", s.path, "error", err)
		}
		return domain.CompletionMap{}, nil
	}
	completion := domain.CompletionMap{}
	if err := json.Unmarshal(payload, &completion); err != nil {
		s.log.Warn("unable to parse progress, treating as empty", "path", s.path, "error", err)
		return domain.CompletionMap{}, nil
	}
	return completion, nil
}

func (s *FileCompletionStore) Save(_ context.Context, completion domain.CompletionMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if completion == nil {
		completion = domain.CompletionMap{}
	}
	payload, err := json.MarshalIndent(completion, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Warn("unable to create state dir, keeping in-memory progress", "path", s.path, "error", err)
		return nil
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		s.log.Warn("unable to persist progress, keeping in-memory state", "path", s.path, "error", err)
	}
	return nil
}
