package domain

import (
	"sort"
	"strings"
	"time"

	apperrors "weldtrack/internal/platform/errors"
)

type Source string

const (
	SourceGeneral  Source = "general"
	SourceReading  Source = "reading"
	SourcePractice Source = "practice"
)

// NormalizeSource maps unrecognized sources to general rather than failing.
func NormalizeSource(raw string) Source {
	switch Source(raw) {
	case SourceReading, SourcePractice, SourceGeneral:
		return Source(raw)
	default:
		return SourceGeneral
	}
}

// Note is one free-text reflection. RelatedID and RelatedTitle are captured
// together at creation time and frozen: later catalog edits never rewrite a
// note's stored context, and a dangling RelatedID is tolerated because the
// title travels with the note.
type Note struct {
	ID           string    `json:"id"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
	Source       Source    `json:"source"`
	RelatedID    string    `json:"relatedId,omitempty"`
	RelatedTitle string    `json:"relatedTitle,omitempty"`
	Tags         []string  `json:"tags"`
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.Body) == "" {
		return apperrors.ErrEmptyBody
	}
	return nil
}

// SortNewestFirst orders notes descending by creation time. The sort is
// stable so same-timestamp notes keep their head-insertion order.
func SortNewestFirst(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}

// Sanitize coerces stored or imported notes to the canonical shape, silently
// dropping malformed entries. The related pair invariant is enforced by
// clearing a half-present pair; tags are deduplicated.
func Sanitize(notes []Note) []Note {
	out := []Note{}
	for _, note := range notes {
		if strings.TrimSpace(note.ID) == "" || strings.TrimSpace(note.Body) == "" || note.CreatedAt.IsZero() {
			continue
		}
		note.Source = NormalizeSource(string(note.Source))
		if note.RelatedID == "" || note.RelatedTitle == "" {
			note.RelatedID = ""
			note.RelatedTitle = ""
		}
		note.Tags = dedup(note.Tags)
		out = append(out, note)
	}
	return out
}

func dedup(tags []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
