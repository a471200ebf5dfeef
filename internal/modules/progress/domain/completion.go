package domain

import "fmt"

type Kind string

const (
	KindReading  Kind = "reading"
	KindPractice Kind = "practice"
)

func (k Kind) Validate() error {
	switch k {
	case KindReading, KindPractice:
		return nil
	default:
		return fmt.Errorf("unsupported progress kind %q", string(k))
	}
}

// CompletionMap records which item ids are marked done. Absence means "not
// done"; entries are created lazily on first toggle.
type CompletionMap map[string]bool

// Done counts completed entries among the given item ids. Stale map entries
// for ids no longer in the catalog do not count.
func (m CompletionMap) Done(itemIDs []string) int {
	done := 0
	for _, itemID := range itemIDs {
		if m[itemID] {
			done++
		}
	}
	return done
}

// Percent is the done/total fraction in [0,1], with the denominator floored
// at one so an empty catalog reports zero instead of dividing by zero.
// Callers format it as a percentage at the rendering edge.
func Percent(done, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(done) / float64(total)
}

// Overall averages the reading and practice percentages.
func Overall(readingPercent, practicePercent float64) float64 {
	return (readingPercent + practicePercent) / 2
}

// Sanitize coerces an imported completion map to the canonical shape. A nil
// map becomes empty; empty-id entries are dropped.
func Sanitize(raw CompletionMap) CompletionMap {
	out := CompletionMap{}
	for itemID, done := range raw {
		if itemID == "" {
			continue
		}
		out[itemID] = done
	}
	return out
}

// KindStats is one row of the stats read model.
type KindStats struct {
	Kind  Kind
	Done  int
	Total int
}
