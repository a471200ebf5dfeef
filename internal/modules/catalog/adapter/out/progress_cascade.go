package out

import (
	"context"
	"strings"

	"weldtrack/internal/modules/catalog/domain"
	catalogout "weldtrack/internal/modules/catalog/port/out"
	progressout "weldtrack/internal/modules/progress/port/out"
)

// CompletionCascadeAdapter lets the catalog drop reading completion entries
// when custom items are removed, going through the progress store port so the
// silos stay independent.
type CompletionCascadeAdapter struct {
	readings progressout.CompletionStore
}

func NewCompletionCascadeAdapter(readings progressout.CompletionStore) catalogout.ProgressCascade {
	return &CompletionCascadeAdapter{readings: readings}
}

func (a *CompletionCascadeAdapter) ForgetReadings(ctx context.Context, ids []string) error {
	completion, err := a.readings.Load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for _, itemID := range ids {
		if _, ok := completion[itemID]; ok {
			delete(completion, itemID)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return a.readings.Save(ctx, completion)
}

// ForgetCustomPrefixed drops every entry with a custom-prefixed id, including
// stale entries for items the custom list no longer carries.
func (a *CompletionCascadeAdapter) ForgetCustomPrefixed(ctx context.Context) error {
	completion, err := a.readings.Load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for itemID := range completion {
		if strings.HasPrefix(itemID, domain.CustomIDPrefix) {
			delete(completion, itemID)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return a.readings.Save(ctx, completion)
}
