package app

import (
	"context"

	checklistview "weldtrack/internal/ui/views/checklists"
)

// readingBridge joins the reading catalog with its completion map to feed the
// Readings checklist.
type readingBridge struct {
	catalog  catalogPort
	progress progressPort
}

func (b readingBridge) Entries(ctx context.Context) ([]checklistview.Entry, error) {
	items, err := b.catalog.ListReadingsFiltered(ctx, "all")
	if err != nil {
		return nil, err
	}
	done, err := b.progress.Completion(ctx, "reading")
	if err != nil {
		return nil, err
	}
	entries := make([]checklistview.Entry, 0, len(items))
	for _, item := range items {
		detail := item.Category
		if item.Link != "" {
			if detail != "" {
				detail += "  "
			}
			detail += item.Link
		}
		entries = append(entries, checklistview.Entry{
			ID:        item.ID,
			Title:     item.Title,
			Detail:    detail,
			Done:      done[item.ID],
			Removable: item.Origin == "custom",
		})
	}
	return entries, nil
}

func (b readingBridge) Toggle(ctx context.Context, id string, done bool) error {
	return b.progress.SetDone(ctx, "reading", id, done)
}

func (b readingBridge) Remove(ctx context.Context, id string) error {
	return b.catalog.RemoveCustomReading(ctx, id)
}

func (b readingBridge) Add(ctx context.Context, title, link string) error {
	_, err := b.catalog.AddCustomReading(ctx, title, link, "", "")
	return err
}

type practiceBridge struct {
	catalog  catalogPort
	progress progressPort
}

func (b practiceBridge) Entries(ctx context.Context) ([]checklistview.Entry, error) {
	items, err := b.catalog.ListPractice(ctx)
	if err != nil {
		return nil, err
	}
	done, err := b.progress.Completion(ctx, "practice")
	if err != nil {
		return nil, err
	}
	entries := make([]checklistview.Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, checklistview.Entry{
			ID:     item.ID,
			Title:  item.Title,
			Detail: item.Focus,
			Done:   done[item.ID],
		})
	}
	return entries, nil
}

func (b practiceBridge) Toggle(ctx context.Context, id string, done bool) error {
	return b.progress.SetDone(ctx, "practice", id, done)
}

// Remove is a no-op: the drill set is fixed.
func (b practiceBridge) Remove(context.Context, string) error {
	return nil
}
