package domain

// Paginate slices an ordered result set into the requested page.
//
// totalPages is ceil(len(items)/pageSize), zero for an empty set. An
// out-of-range request is silently clamped into [1, max(totalPages, 1)]
// rather than treated as an error, so a filter change that shrinks the
// result set below the previously selected page corrects itself. pageSize
// must be positive; callers validate it at the configuration boundary.
func Paginate(items []Item, pageSize, requestedPage int) (pageItems []Item, effectivePage, totalPages int) {
	totalPages = (len(items) + pageSize - 1) / pageSize

	effectivePage = requestedPage
	if maxPage := max(totalPages, 1); effectivePage > maxPage {
		effectivePage = maxPage
	}
	if effectivePage < 1 {
		effectivePage = 1
	}

	start := (effectivePage - 1) * pageSize
	if start >= len(items) {
		return []Item{}, effectivePage, totalPages
	}
	end := min(start+pageSize, len(items))
	return items[start:end], effectivePage, totalPages
}
