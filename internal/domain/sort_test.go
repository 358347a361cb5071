package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestSortItems(t *testing.T) {
	items := []Item{
		{ID: 3, Name: "Brave", Category: "browser", PrivacyLevel: PrivacyLevelHigh, Rating: 4.5},
		{ID: 1, Name: "Signal", Category: "messaging", PrivacyLevel: PrivacyLevelHigh, Rating: 4.8},
		{ID: 4, Name: "LineageOS", Category: "os", PrivacyLevel: PrivacyLevelMedium, Rating: 4.1},
		{ID: 2, Name: "Firefox", Category: "browser", PrivacyLevel: PrivacyLevelHigh, Rating: 4.5},
		{ID: 5, Name: "Acme Tracker", Category: "analytics", PrivacyLevel: PrivacyLevelLow, Rating: 1.2},
	}

	cases := []struct {
		name      string
		key       SortKey
		wantNames []string
	}{
		{
			name:      "name_ascending",
			key:       SortKeyName,
			wantNames: []string{"Acme Tracker", "Brave", "Firefox", "LineageOS", "Signal"},
		},
		{
			name:      "name_descending",
			key:       SortKeyNameDesc,
			wantNames: []string{"Signal", "LineageOS", "Firefox", "Brave", "Acme Tracker"},
		},
		{
			name:      "category_with_name_tiebreak",
			key:       SortKeyCategory,
			wantNames: []string{"Acme Tracker", "Brave", "Firefox", "Signal", "LineageOS"},
		},
		{
			name:      "privacy_descending_with_name_tiebreak",
			key:       SortKeyPrivacy,
			wantNames: []string{"Brave", "Firefox", "Signal", "LineageOS", "Acme Tracker"},
		},
		{
			name:      "rating_descending_with_name_tiebreak",
			key:       SortKeyRating,
			wantNames: []string{"Signal", "Brave", "Firefox", "LineageOS", "Acme Tracker"},
		},
		{
			name:      "newest_descending_by_id",
			key:       SortKeyNewest,
			wantNames: []string{"Acme Tracker", "LineageOS", "Brave", "Firefox", "Signal"},
		},
		{
			name:      "unknown_key_falls_back_to_name",
			key:       SortKey("shoe-size"),
			wantNames: []string{"Acme Tracker", "Brave", "Firefox", "LineageOS", "Signal"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sorted := SortItems(items, tc.key)
			assert.Equal(t, tc.wantNames, namesOf(sorted))

			// Idempotence: sorting a sorted sequence changes nothing.
			assert.Equal(t, sorted, SortItems(sorted, tc.key))

			// Input untouched.
			require.Equal(t, "Brave", items[0].Name)
		})
	}
}

func TestSortItems_PrivacyOrdinalScenario(t *testing.T) {
	// Tied names across every privacy level: high precedes medium
	// precedes low, alphabetical within a level.
	items := []Item{
		{ID: 1, Name: "Zeta", PrivacyLevel: PrivacyLevelLow},
		{ID: 2, Name: "Alpha", PrivacyLevel: PrivacyLevelMedium},
		{ID: 3, Name: "Zeta", PrivacyLevel: PrivacyLevelHigh},
		{ID: 4, Name: "Alpha", PrivacyLevel: PrivacyLevelHigh},
		{ID: 5, Name: "Zeta", PrivacyLevel: PrivacyLevelMedium},
		{ID: 6, Name: "Alpha", PrivacyLevel: PrivacyLevelLow},
	}

	sorted := SortItems(items, SortKeyPrivacy)

	wantIDs := []int64{4, 3, 2, 5, 6, 1}
	gotIDs := make([]int64, 0, len(sorted))
	for _, item := range sorted {
		gotIDs = append(gotIDs, item.ID)
	}
	assert.Equal(t, wantIDs, gotIDs)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortKeyNewest, ParseSortKey("newest"))
	assert.Equal(t, SortKeyNameDesc, ParseSortKey("name-desc"))
	assert.Equal(t, SortKeyName, ParseSortKey(""))
	assert.Equal(t, SortKeyName, ParseSortKey("nonsense"))
}
