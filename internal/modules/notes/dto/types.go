package dto

import "time"

type AddNoteInput struct {
	Body      string
	Source    string
	RelatedID string
	Tags      []string
}

type NoteOutput struct {
	ID           string
	Body         string
	CreatedAt    time.Time
	Source       string
	RelatedID    string
	RelatedTitle string
	Tags         []string
}
