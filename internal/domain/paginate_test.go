package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, Item{ID: int64(i), Name: fmt.Sprintf("Tool %03d", i)})
	}
	return items
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name          string
		total         int
		pageSize      int
		requestedPage int
		wantLen       int
		wantPage      int
		wantTotal     int
		wantFirstID   int64
	}{
		{
			name:  "empty_set",
			total: 0, pageSize: 20, requestedPage: 1,
			wantLen: 0, wantPage: 1, wantTotal: 0,
		},
		{
			name:  "first_page_full",
			total: 45, pageSize: 20, requestedPage: 1,
			wantLen: 20, wantPage: 1, wantTotal: 3, wantFirstID: 1,
		},
		{
			name:  "last_page_truncated",
			total: 45, pageSize: 20, requestedPage: 3,
			wantLen: 5, wantPage: 3, wantTotal: 3, wantFirstID: 41,
		},
		{
			name:  "page_beyond_end_clamped",
			total: 45, pageSize: 20, requestedPage: 10000,
			wantLen: 5, wantPage: 3, wantTotal: 3, wantFirstID: 41,
		},
		{
			name:  "negative_page_clamped",
			total: 45, pageSize: 20, requestedPage: -5,
			wantLen: 20, wantPage: 1, wantTotal: 3, wantFirstID: 1,
		},
		{
			name:  "zero_page_clamped",
			total: 45, pageSize: 20, requestedPage: 0,
			wantLen: 20, wantPage: 1, wantTotal: 3, wantFirstID: 1,
		},
		{
			name:  "exact_multiple",
			total: 40, pageSize: 20, requestedPage: 2,
			wantLen: 20, wantPage: 2, wantTotal: 2, wantFirstID: 21,
		},
		{
			name:  "page_size_one",
			total: 3, pageSize: 1, requestedPage: 2,
			wantLen: 1, wantPage: 2, wantTotal: 3, wantFirstID: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, effectivePage, totalPages := Paginate(makeItems(tc.total), tc.pageSize, tc.requestedPage)

			assert.Len(t, page, tc.wantLen)
			assert.Equal(t, tc.wantPage, effectivePage)
			assert.Equal(t, tc.wantTotal, totalPages)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantFirstID, page[0].ID)
			}
			assert.LessOrEqual(t, len(page), tc.pageSize)
			assert.GreaterOrEqual(t, effectivePage, 1)
			assert.LessOrEqual(t, effectivePage, max(totalPages, 1))
		})
	}
}

func TestPaginate_FilterShrinksBelowSelectedPage(t *testing.T) {
	// A 45-item catalog filtered down to 3 items while the user is on
	// page 3: the request silently lands on page 1 with all 3 items.
	catalog := makeItems(45)
	for i := range catalog {
		catalog[i].Category = "other"
	}
	catalog[4].Category = "browser"
	catalog[11].Category = "browser"
	catalog[29].Category = "browser"

	matched := FilterItems(catalog, Filters{Category: "browser"})
	page, effectivePage, totalPages := Paginate(matched, 20, 3)

	assert.Len(t, page, 3)
	assert.Equal(t, 1, effectivePage)
	assert.Equal(t, 1, totalPages)
}
