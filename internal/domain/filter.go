package domain

import "strings"

// CategoryAll selects every category.
const CategoryAll = "all"

// Filters is the user-controlled selection criteria for a catalog query.
// The zero value matches everything.
type Filters struct {
	// Category restricts to a single category; "all" or empty disables it.
	Category string
	// Search is a case-insensitive substring matched against name,
	// description, category, and tags.
	Search string
	// Tags must all be present on an item for it to pass (AND semantics).
	Tags []string
}

// FilterItems returns the items matching every criterion in f, preserving
// input order. The input slice is never mutated.
func FilterItems(items []Item, f Filters) []Item {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if !matchesCategory(item, f.Category) {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if !matchesTags(item, f.Tags) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesCategory(item Item, category string) bool {
	return category == "" || category == CategoryAll || item.Category == category
}

func matchesSearch(item Item, search string) bool {
	if strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search) ||
		strings.Contains(strings.ToLower(item.Category), search) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func matchesTags(item Item, tags []string) bool {
	for _, tag := range tags {
		if !item.HasTag(tag) {
			return false
		}
	}
	return true
}
