package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"weldtrack/internal/modules/notes/domain"
	notesout "weldtrack/internal/modules/notes/port/out"
	"weldtrack/internal/platform/clock"
)

const (
	notesFile = "note-entries.json"
	// legacyFile is the pre-structured storage: one free-text blob. It is
	// read once, converted, and deleted.
	legacyFile = "welding-notes.txt"
)

// FileNoteStore persists the structured note list. Reads sanitize whatever is
// on disk and fail soft to an empty list.
type FileNoteStore struct {
	statePath string
	clock     clock.Clock
	log       hclog.Logger
	mu        sync.Mutex
}

func NewFileNoteStore(statePath string, clk clock.Clock, log hclog.Logger) notesout.NoteStore {
	return &FileNoteStore{statePath: statePath, clock: clk, log: log}
}

func (s *FileNoteStore) Load(_ context.Context) ([]domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(), nil
}

func (s *FileNoteStore) loadLocked() []domain.Note {
	path := filepath.Join(s.statePath, notesFile)
	payload, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("unable to read notes, treating as empty", "path", path, "error", err)
		}
		return []domain.Note{}
	}
	notes := []domain.Note{}
	if err := json.Unmarshal(payload, &notes); err != nil {
		s.log.Warn("unable to parse saved notes, treating as empty", "path", path, "error", err)
		return []domain.Note{}
	}
	return domain.Sanitize(notes)
}

func (s *FileNoteStore) Save(_ context.Context, notes []domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(notes)
}

func (s *FileNoteStore) saveLocked(notes []domain.Note) error {
	if notes == nil {
		notes = []domain.Note{}
	}
	payload, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	path := filepath.Join(s.statePath, notesFile)
	if err := os.MkdirAll(s.statePath, 0o755); err != nil {
		s.log.Warn("unable to create state dir, keeping in-memory notes", "path", path, "error", err)
		return nil
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		s.log.Warn("unable to persist notes, keeping in-memory state", "path", path, "error", err)
	}
	return nil
}

// MigrateLegacy upgrades the single-blob legacy file into a structured note
// at the head of the list, then deletes the legacy file so the migration
// cannot run twice.
func (s *FileNoteStore) MigrateLegacy(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	legacyPath := filepath.Join(s.statePath, legacyFile)
	payload, err := os.ReadFile(legacyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read legacy notes: %w", err)
	}
	body := strings.TrimSpace(string(payload))
	if body != "" {
		now := s.clock.Now()
		migrated := domain.Note{
			ID:        fmt.Sprintf("legacy-%d", now.UnixMilli()),
			Body:      body,
			CreatedAt: now,
			Source:    domain.SourceGeneral,
		}
		notes := append([]domain.Note{migrated}, s.loadLocked()...)
		if err := s.saveLocked(notes); err != nil {
			return err
		}
	}
	if err := os.Remove(legacyPath); err != nil {
		return fmt.Errorf("remove legacy notes: %w", err)
	}
	return nil
}
