package dto

type StreakOutput struct {
	Count int
	Date  string
	Types []string
}
