package out_test

import (
	"context"
	"testing"

	catalogout "weldtrack/internal/modules/catalog/adapter/out"
	progressadapter "weldtrack/internal/modules/progress/adapter/out"
	progressdomain "weldtrack/internal/modules/progress/domain"
	"weldtrack/internal/platform/logging"
)

func TestCompletionCascadeForgetsRemovedReadings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := progressadapter.NewFileCompletionStore(t.TempDir(), progressdomain.KindReading, logging.Discard())
	seed := progressdomain.CompletionMap{
		"mig-basics": true,
		"custom-1":   true,
		"custom-2":   true,
	}
	if err := store.Save(ctx, seed); err != nil {
		t.Fatalf("seed completion: %v", err)
	}

	cascade := catalogout.NewCompletionCascadeAdapter(store)
	if err := cascade.ForgetReadings(ctx, []string{"custom-1", "custom-2", "never-done"}); err != nil {
		t.Fatalf("forget readings: %v", err)
	}

	completion, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load completion: %v", err)
	}
	if len(completion) != 1 || !completion["mig-basics"] {
		t.Fatalf("cascade should only drop the named ids: %v", completion)
	}
}

func TestCompletionCascadeSweepsStaleCustomEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := progressadapter.NewFileCompletionStore(t.TempDir(), progressdomain.KindReading, logging.Discard())
	// "custom-stale" has no matching item on the custom list anymore, e.g.
	// a flag restored from a backup whose list dropped the item.
	seed := progressdomain.CompletionMap{
		"mig-basics":   true,
		"custom-1":     true,
		"custom-stale": true,
	}
	if err := store.Save(ctx, seed); err != nil {
		t.Fatalf("seed completion: %v", err)
	}

	cascade := catalogout.NewCompletionCascadeAdapter(store)
	if err := cascade.ForgetCustomPrefixed(ctx); err != nil {
		t.Fatalf("forget custom prefixed: %v", err)
	}

	completion, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load completion: %v", err)
	}
	if len(completion) != 1 || !completion["mig-basics"] {
		t.Fatalf("sweep should drop every custom-prefixed entry: %v", completion)
	}
}
