package dto

type SetDoneInput struct {
	Kind string
	ID   string
	Done bool
}

type KindStatsOutput struct {
	Kind    string
	Done    int
	Total   int
	Percent float64
}
