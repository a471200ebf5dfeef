package domain

import (
	"net/url"
	"regexp"
	"strings"

	apperrors "weldtrack/internal/platform/errors"
)

type Origin string

const (
	OriginDefault Origin = "default"
	OriginCustom  Origin = "custom"
)

// CustomIDPrefix marks user-added readings. Progress entries are cascaded by
// this prefix when the whole custom list is cleared.
const CustomIDPrefix = "custom-"

// ReadingItem is one entry on the reading checklist. Built-in items ship with
// the catalog and are immutable; custom items are user-added and removable.
type ReadingItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Link        string   `json:"link,omitempty"`
	Type        string   `json:"type,omitempty"`
	Tags        []string `json:"tags"`
	Origin      Origin   `json:"origin"`
}

// PracticeItem is one entry on the practice drill checklist. The set is
// static; users never create practice items.
type PracticeItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Focus       string `json:"focus"`
}

func (i ReadingItem) IsCustom() bool {
	return i.Origin == OriginCustom || strings.HasPrefix(i.ID, CustomIDPrefix)
}

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// NormalizeLink trims the raw link, prefixes https:// when no scheme is
// present, and requires the result to parse as an absolute URL.
func NormalizeLink(raw string) (string, error) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return "", apperrors.ErrLinkRequired
	}
	if !schemePattern.MatchString(link) {
		link = "https://" + strings.TrimLeft(link, "/")
	}
	parsed, err := url.Parse(link)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", apperrors.ErrInvalidLink
	}
	return parsed.String(), nil
}

// TitleCaseCategory converts a raw category to its display form, capitalizing
// the first letter of each whitespace-separated word.
func TitleCaseCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	words := strings.Fields(raw)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// CategoryTags derives the stored tag set for a custom reading: the raw
// category, its title-cased display form, and its lowercase form, deduplicated
// in that order.
func CategoryTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return DedupTags([]string{raw, TitleCaseCategory(raw), strings.ToLower(raw)})
}

// DedupTags drops empty and repeated tags while preserving first-seen order.
func DedupTags(tags []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// NewCustomReading validates and builds a user-added reading. The id is
// supplied by the caller so id generation stays outside the domain.
func NewCustomReading(id, title, link, description, categoryRaw string) (ReadingItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return ReadingItem{}, apperrors.ErrTitleRequired
	}
	normalized, err := NormalizeLink(link)
	if err != nil {
		return ReadingItem{}, err
	}
	category := TitleCaseCategory(categoryRaw)
	itemType := category
	if itemType == "" {
		itemType = "Custom"
	}
	return ReadingItem{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    category,
		Link:        normalized,
		Type:        itemType,
		Tags:        CategoryTags(categoryRaw),
		Origin:      OriginCustom,
	}, nil
}

// IsDuplicate reports whether a candidate title or normalized link collides
// with an existing item. Titles compare case-insensitively after trimming;
// links compare exactly.
func IsDuplicate(existing []ReadingItem, title, normalizedLink string) bool {
	wanted := strings.ToLower(strings.TrimSpace(title))
	for _, item := range existing {
		if strings.ToLower(strings.TrimSpace(item.Title)) == wanted {
			return true
		}
		if item.Link != "" && item.Link == normalizedLink {
			return true
		}
	}
	return false
}

// SanitizeCustom filters imported custom readings down to well-formed
// records: non-empty id and title, deduplicated tags, custom origin. Used by
// backup restore, which must tolerate arbitrary stored shapes.
func SanitizeCustom(items []ReadingItem) []ReadingItem {
	out := []ReadingItem{}
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Title) == "" {
			continue
		}
		item.Tags = DedupTags(item.Tags)
		item.Origin = OriginCustom
		out = append(out, item)
	}
	return out
}

// FilterValues derives the reading filter vocabulary: the built-in category
// set extended with lowercase custom categories and tags.
func FilterValues(custom []ReadingItem) []string {
	values := []string{"safety", "process", "theory", "blueprint"}
	seen := map[string]bool{}
	for _, v := range values {
		seen[v] = true
	}
	for _, item := range custom {
		if item.Category != "" {
			if v := strings.ToLower(item.Category); !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		for _, tag := range item.Tags {
			if v := strings.ToLower(tag); v != "" && !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	return values
}

// MatchesFilter reports whether an item is visible under a filter value.
// "all" matches everything and "custom" matches user-added items; any other
// value matches the item's lowercase category, type, or tags.
func (i ReadingItem) MatchesFilter(filter string) bool {
	switch filter {
	case "", "all":
		return true
	case "custom":
		return i.IsCustom()
	}
	filter = strings.ToLower(filter)
	if strings.ToLower(i.Category) == filter || strings.ToLower(i.Type) == filter {
		return true
	}
	for _, tag := range i.Tags {
		if strings.ToLower(tag) == filter {
			return true
		}
	}
	return false
}
