package search

import (
	"strings"

	"hubpick/internal/api"
)

// Entry is one selectable search result.
type Entry struct {
	ID        string
	Category  string // table key of the grouping it came from
	Type      string // normalized kind used for URLs and commits
	Label     string
	AvatarURL string // absolute URL, or empty when the service sent none
}

// ParseResults flattens a raw quicksearch response into the ordered entry
// list the dropdown renders. Categories are visited in table order; a
// category contributes only when both the static configuration and the
// active filter set allow its type. Within a category the service's order
// is preserved. Entries that produce no id are dropped.
func ParseResults(raw *api.QuickSearchResponse, configured, active []string, baseURL string) []Entry {
	if raw == nil {
		return nil
	}
	configuredSet := toSet(configured)
	activeSet := toSet(active)

	var out []Entry
	for _, cat := range Categories {
		if !configuredSet[cat.Key] || !activeSet[cat.Key] {
			continue
		}
		for _, hit := range raw.Hits(cat.ResponseKey) {
			id := resolveID(cat, hit)
			if id == "" {
				continue
			}
			label := id
			if hit.FullName != "" {
				label = hit.FullName
			}
			out = append(out, Entry{
				ID:        id,
				Category:  cat.Key,
				Type:      cat.Key,
				Label:     label,
				AvatarURL: absolutizeAvatar(hit.AvatarURL, baseURL),
			})
		}
	}
	return out
}

// resolveID reads the entry id from the category's field, falling back to
// the generic "id" and "name" fields.
func resolveID(cat Category, hit api.Hit) string {
	if v := fieldValue(hit, cat.IDField); v != "" {
		return v
	}
	if hit.ID != "" {
		return hit.ID
	}
	return hit.Name
}

func fieldValue(hit api.Hit, field string) string {
	switch field {
	case "user":
		return hit.User
	case "name":
		return hit.Name
	default:
		return hit.ID
	}
}

// absolutizeAvatar rewrites host-relative avatar paths against the Hub
// origin; absolute URLs pass through unchanged.
func absolutizeAvatar(avatar, baseURL string) string {
	if avatar == "" || !strings.HasPrefix(avatar, "/") {
		return avatar
	}
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + avatar
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
