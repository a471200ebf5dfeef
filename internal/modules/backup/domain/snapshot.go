package domain

import (
	"bytes"
	"encoding/json"
	"time"

	apperrors "weldtrack/internal/platform/errors"
)

// Version is written into every snapshot. It is reserved for future schema
// migrations and is not validated on import.
const Version = 1

// Snapshot is the portable point-in-time copy of all mutable state.
type Snapshot struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	Data       Payload   `json:"data"`
}

type Payload struct {
	Readings       map[string]bool `json:"readings"`
	Practice       map[string]bool `json:"practice"`
	Notes          []NoteRecord    `json:"notes"`
	Streak         StreakRecord    `json:"streak"`
	CustomReadings []ReadingRecord `json:"customReadings"`
}

// NoteRecord mirrors the notes module's persisted shape. The backup codec
// only checks structural well-formedness; semantic sanitization happens when
// the notes silo replays the records through its own normalization.
type NoteRecord struct {
	ID           string    `json:"id"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
	Source       string    `json:"source"`
	RelatedID    string    `json:"relatedId,omitempty"`
	RelatedTitle string    `json:"relatedTitle,omitempty"`
	Tags         []string  `json:"tags"`
}

type StreakRecord struct {
	Count int      `json:"count"`
	Date  string   `json:"date"`
	Types []string `json:"types"`
}

type ReadingRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Link        string   `json:"link,omitempty"`
	Type        string   `json:"type,omitempty"`
	Tags        []string `json:"tags"`
	Origin      string   `json:"origin"`
}

// Encode renders a snapshot as an indented UTF-8 JSON document.
func Encode(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Decode parses an imported payload. Only the envelope is strict: the payload
// must be a JSON object carrying a `data` object, otherwise ErrInvalidBackup.
// Every field inside data is coerced defensively — wrong-typed maps become
// empty, malformed list entries are dropped silently, and a wrong-typed
// streak collapses to the zero record.
func Decode(payload []byte) (Snapshot, error) {
	envelope := struct {
		Version    int             `json:"version"`
		ExportedAt time.Time       `json:"exportedAt"`
		Data       json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Snapshot{}, apperrors.ErrInvalidBackup
	}
	if !isObject(envelope.Data) {
		return Snapshot{}, apperrors.ErrInvalidBackup
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(envelope.Data, &fields); err != nil {
		return Snapshot{}, apperrors.ErrInvalidBackup
	}

	return Snapshot{
		Version:    envelope.Version,
		ExportedAt: envelope.ExportedAt,
		Data: Payload{
			Readings:       coerceCompletion(fields["readings"]),
			Practice:       coerceCompletion(fields["practice"]),
			Notes:          coerceList[NoteRecord](fields["notes"]),
			Streak:         coerceStreak(fields["streak"]),
			CustomReadings: coerceList[ReadingRecord](fields["customReadings"]),
		},
	}, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func coerceCompletion(raw json.RawMessage) map[string]bool {
	out := map[string]bool{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]bool{}
	}
	delete(out, "")
	return out
}

// coerceList decodes element by element so one malformed entry does not drop
// the whole list.
func coerceList[T any](raw json.RawMessage) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}
	elements := []json.RawMessage{}
	if err := json.Unmarshal(raw, &elements); err != nil {
		return []T{}
	}
	for _, element := range elements {
		var record T
		if err := json.Unmarshal(element, &record); err != nil {
			continue
		}
		out = append(out, record)
	}
	return out
}

func coerceStreak(raw json.RawMessage) StreakRecord {
	record := StreakRecord{}
	if len(raw) == 0 {
		return record
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return StreakRecord{}
	}
	if record.Count < 0 {
		record.Count = 0
	}
	if record.Types == nil {
		record.Types = []string{}
	}
	return record
}
