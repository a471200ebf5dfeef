package dto

type AddReadingInput struct {
	Title       string
	Link        string
	Description string
	Category    string
}

type ReadingOutput struct {
	ID          string
	Title       string
	Description string
	Category    string
	Link        string
	Type        string
	Tags        []string
	Origin      string
}

type PracticeOutput struct {
	ID          string
	Title       string
	Description string
	Focus       string
}
