package domain_test

import (
	"testing"

	"weldtrack/internal/modules/progress/domain"
)

func TestPercentBounds(t *testing.T) {
	t.Parallel()
	if got := domain.Percent(0, 0); got != 0 {
		t.Fatalf("empty catalog should report 0, got %f", got)
	}
	if got := domain.Percent(3, 6); got != 0.5 {
		t.Fatalf("expected 0.5, got %f", got)
	}
	if got := domain.Percent(6, 6); got != 1 {
		t.Fatalf("expected 1, got %f", got)
	}
}

func TestDoneIgnoresStaleEntries(t *testing.T) {
	t.Parallel()
	m := domain.CompletionMap{"a": true, "removed": true, "b": false}
	if got := m.Done([]string{"a", "b", "c"}); got != 1 {
		t.Fatalf("expected 1 done among live ids, got %d", got)
	}
}

func TestOverall(t *testing.T) {
	t.Parallel()
	if got := domain.Overall(1, 0); got != 0.5 {
		t.Fatalf("expected 0.5, got %f", got)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	out := domain.Sanitize(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("nil map should sanitize to empty, got %#v", out)
	}
	out = domain.Sanitize(domain.CompletionMap{"": true, "x": true})
	if len(out) != 1 || !out["x"] {
		t.Fatalf("empty ids should be dropped, got %#v", out)
	}
}

func TestKindValidate(t *testing.T) {
	t.Parallel()
	if err := domain.KindReading.Validate(); err != nil {
		t.Fatalf("reading should be valid: %v", err)
	}
	if err := domain.Kind("homework").Validate(); err == nil {
		t.Fatalf("unknown kind should fail")
	}
}
