package domain

import "time"

// DayFormat is the calendar-day key, device-local date rendered as
// YYYY-MM-DD.
const DayFormat = "2006-01-02"

// Streak is the consecutive-day activity record. Date is the last day any
// qualifying action occurred ("" before the first one); Types are the action
// categories credited on that date.
type Streak struct {
	Count int      `json:"count"`
	Date  string   `json:"date"`
	Types []string `json:"types"`
}

// Advance applies one qualifying action on the given day and returns the next
// state:
//   - same day: the action type is recorded, the count is unchanged
//   - consecutive day: the count grows by one
//   - anything else (gap, first action, stored date in the future): the
//     streak restarts at one
//
// Un-marking an item never calls Advance, so streaks are never reversed.
func Advance(s Streak, actionType, today string) Streak {
	if s.Date == today {
		for _, t := range s.Types {
			if t == actionType {
				return s
			}
		}
		s.Types = append(append([]string{}, s.Types...), actionType)
		return s
	}
	if s.Date == Yesterday(today) {
		s.Count++
	} else {
		s.Count = 1
	}
	s.Date = today
	s.Types = []string{actionType}
	return s
}

// Yesterday returns the day before a YYYY-MM-DD day, or "" when the input
// does not parse.
func Yesterday(today string) string {
	day, err := time.Parse(DayFormat, today)
	if err != nil {
		return ""
	}
	return day.AddDate(0, 0, -1).Format(DayFormat)
}

// Normalize coerces a stored or imported record to the canonical shape:
// negative counts become zero, unparseable dates are cleared, and types are
// deduplicated with empty entries dropped.
func Normalize(s Streak) Streak {
	if s.Count < 0 {
		s.Count = 0
	}
	if s.Date != "" {
		if _, err := time.Parse(DayFormat, s.Date); err != nil {
			s.Date = ""
		}
	}
	seen := map[string]bool{}
	types := []string{}
	for _, t := range s.Types {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	s.Types = types
	return s
}
