package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey identifies one of the recognised catalog orderings.
type SortKey string

const (
	SortKeyName     SortKey = "name"
	SortKeyNameDesc SortKey = "name-desc"
	SortKeyCategory SortKey = "category"
	SortKeyPrivacy  SortKey = "privacy"
	SortKeyRating   SortKey = "rating"
	SortKeyNewest   SortKey = "newest"
)

// ParseSortKey maps a raw sort parameter onto a recognised key, falling
// back to name ascending for anything it does not recognise.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(raw); key {
	case SortKeyName, SortKeyNameDesc, SortKeyCategory, SortKeyPrivacy, SortKeyRating, SortKeyNewest:
		return key
	default:
		return SortKeyName
	}
}

// SortItems returns a copy of items ordered by key. Name and category
// comparisons use locale-aware collation; every key other than the two
// name orderings breaks ties by name ascending, so the result is
// deterministic for any input.
func SortItems(items []Item, key SortKey) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	coll := collate.New(language.Und)
	byName := func(a, b Item) int { return coll.CompareString(a.Name, b.Name) }

	var less func(a, b Item) bool
	switch key {
	case SortKeyNameDesc:
		less = func(a, b Item) bool { return byName(a, b) > 0 }
	case SortKeyCategory:
		less = func(a, b Item) bool {
			if c := coll.CompareString(a.Category, b.Category); c != 0 {
				return c < 0
			}
			return byName(a, b) < 0
		}
	case SortKeyPrivacy:
		less = func(a, b Item) bool {
			if a.PrivacyLevel.Rank() != b.PrivacyLevel.Rank() {
				return a.PrivacyLevel.Rank() > b.PrivacyLevel.Rank()
			}
			return byName(a, b) < 0
		}
	case SortKeyRating:
		less = func(a, b Item) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return byName(a, b) < 0
		}
	case SortKeyNewest:
		less = func(a, b Item) bool { return a.ID > b.ID }
	default:
		less = func(a, b Item) bool { return byName(a, b) < 0 }
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
