package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weldtrack/internal/modules/streak/domain"
)

func TestAdvanceTransitions(t *testing.T) {
	t.Parallel()

	s := domain.Streak{}
	s = domain.Advance(s, "practice", "2024-01-10")
	assert.Equal(t, domain.Streak{Count: 1, Date: "2024-01-10", Types: []string{"practice"}}, s)

	s = domain.Advance(s, "reading", "2024-01-10")
	assert.Equal(t, domain.Streak{Count: 1, Date: "2024-01-10", Types: []string{"practice", "reading"}}, s)

	s = domain.Advance(s, "practice", "2024-01-11")
	assert.Equal(t, domain.Streak{Count: 2, Date: "2024-01-11", Types: []string{"practice"}}, s)

	s = domain.Advance(s, "practice", "2024-01-13")
	assert.Equal(t, domain.Streak{Count: 1, Date: "2024-01-13", Types: []string{"practice"}}, s)
}

func TestAdvanceSameDaySameType(t *testing.T) {
	t.Parallel()
	s := domain.Streak{Count: 3, Date: "2024-02-01", Types: []string{"reading"}}
	next := domain.Advance(s, "reading", "2024-02-01")
	assert.Equal(t, s, next)
}

func TestAdvanceFutureStoredDateRestarts(t *testing.T) {
	t.Parallel()
	s := domain.Streak{Count: 9, Date: "2024-03-20", Types: []string{"reading"}}
	next := domain.Advance(s, "note", "2024-03-15")
	assert.Equal(t, domain.Streak{Count: 1, Date: "2024-03-15", Types: []string{"note"}}, next)
}

func TestYesterday(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2024-02-29", domain.Yesterday("2024-03-01"))
	assert.Equal(t, "", domain.Yesterday("not-a-day"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	got := domain.Normalize(domain.Streak{Count: -4, Date: "garbage", Types: []string{"a", "", "a", "b"}})
	assert.Equal(t, domain.Streak{Count: 0, Date: "", Types: []string{"a", "b"}}, got)

	kept := domain.Normalize(domain.Streak{Count: 2, Date: "2024-01-05", Types: []string{"reading"}})
	assert.Equal(t, domain.Streak{Count: 2, Date: "2024-01-05", Types: []string{"reading"}}, kept)
}
