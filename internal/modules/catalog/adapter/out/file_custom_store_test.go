package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	catalogout "weldtrack/internal/modules/catalog/adapter/out"
	"weldtrack/internal/modules/catalog/domain"
	"weldtrack/internal/platform/logging"
)

func TestFileCustomStoreMissingReadsEmpty(t *testing.T) {
	t.Parallel()
	store := catalogout.NewFileCustomReadingStore(t.TempDir(), logging.Discard())
	items, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load custom readings: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}

func TestFileCustomStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := catalogout.NewFileCustomReadingStore(t.TempDir(), logging.Discard())
	in := []domain.ReadingItem{{
		ID:       "custom-1",
		Title:    "Pulse MIG overview",
		Category: "Process",
		Link:     "https://example.com/pulse",
		Type:     "Process",
		Tags:     []string{"process", "Process"},
		Origin:   domain.OriginCustom,
	}}
	if err := store.Save(context.Background(), in); err != nil {
		t.Fatalf("save custom readings: %v", err)
	}
	out, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load custom readings: %v", err)
	}
	if len(out) != 1 || out[0].Title != in[0].Title || out[0].Link != in[0].Link {
		t.Fatalf("round trip changed items: %+v", out)
	}
}

func TestFileCustomStoreCorruptReadsEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom-readings.json"), []byte(`{"not":"a list"}`), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	store := catalogout.NewFileCustomReadingStore(dir, logging.Discard())
	items, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load custom readings: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("corrupt file should read empty, got %d", len(items))
	}
}
