package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Prefixed wraps a Generator so every id carries a namespace prefix.
// Custom readings use "custom-" and notes use "note-"; the custom prefix
// doubles as the origin marker when cascading progress deletes.
type Prefixed struct {
	Prefix string
	Gen    Generator
}

func (p Prefixed) New() string {
	return p.Prefix + p.Gen.New()
}
