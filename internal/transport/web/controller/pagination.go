package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/privacytools/directory/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 200
)

// parsePagination reads page and page_size from the query string. Values
// that are not integers are errors; out-of-range values are normalized
// rather than rejected, since a stale link to a page that no longer
// exists should still render something. Zero size/cap arguments fall back
// to the package defaults.
func parsePagination(q url.Values, sizeDefault, sizeCap int) (page, pageSize int, err error) {
	if sizeDefault <= 0 {
		sizeDefault = defaultPageSize
	}
	if sizeCap <= 0 {
		sizeCap = maxPageSize
	}

	page = defaultPage
	pageSize = sizeDefault

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > int64(sizeCap) {
			ps = int64(sizeCap)
		}
		if ps < 1 {
			ps = 1
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

// filtersFromQuery reads the category, search, and tags criteria. Every
// value is acceptable; an unknown category simply matches nothing.
func filtersFromQuery(q url.Values) domain.Filters {
	filters := domain.Filters{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}
	return filters
}

func sortKeyFromQuery(q url.Values) domain.SortKey {
	return domain.ParseSortKey(q.Get("sort"))
}
