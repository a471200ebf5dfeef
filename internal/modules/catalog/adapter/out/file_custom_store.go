package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"weldtrack/internal/modules/catalog/domain"
	catalogout "weldtrack/internal/modules/catalog/port/out"
)

// FileCustomReadingStore keeps the custom reading list in a single JSON file,
// the data-directory analog of the browser's custom-readings storage key.
// Reads fail soft to an empty list and writes log-and-continue, so a broken
// data directory never takes down the session.
type FileCustomReadingStore struct {
	path string
	log  hclog.Logger
	mu   sync.Mutex
}

func NewFileCustomReadingStore(statePath string, log hclog.Logger) catalogout.CustomReadingStore {
	return &FileCustomReadingStore{path: filepath.Join(statePath, "custom-readings.json"), log: log}
}

func (s *FileCustomReadingStore) Load(_ context.Context) ([]domain.ReadingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("unable to read custom readings, treating as empty", "path", s.path, "error", err)
		}
		return []domain.ReadingItem{}, nil
	}
	items := []domain.ReadingItem{}
	if err := json.Unmarshal(payload, &items); err != nil {
		s.log.Warn("unable to parse saved readings, treating as empty", "path", s.path, "error", err)
		return []domain.ReadingItem{}, nil
	}
	return items, nil
}

func (s *FileCustomReadingStore) Save(_ context.Context, items []domain.ReadingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []domain.ReadingItem{}
	}
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode custom readings: %w", err)
	}
	if err := writeState(s.path, payload); err != nil {
		s.log.Warn("unable to persist custom readings, keeping in-memory state", "path", s.path, "error", err)
	}
	return nil
}

// writeState is the shared whole-value overwrite used by every state file in
// this package.
func writeState(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
