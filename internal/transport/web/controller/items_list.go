package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/privacytools/directory/internal/domain"
)

// CatalogSnapshotter hands out a copy of the current catalog for one
// query pipeline run.
type CatalogSnapshotter interface {
	Snapshot() []domain.Item
}

type ItemsList struct {
	Catalog     CatalogSnapshotter
	CacheMaxAge time.Duration
	// PageSizeDefault and PageSizeMax override the built-in page size
	// bounds when positive.
	PageSizeDefault int
	PageSizeMax     int
}

type ItemsListResponse struct {
	Data     []domain.Item     `json:"data"`
	Metadata ItemsListMetadata `json:"metadata"`
}

type ItemsListMetadata struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

func (c ItemsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query(), c.PageSizeDefault, c.PageSizeMax)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filters := filtersFromQuery(r.URL.Query())
	sortKey := sortKeyFromQuery(r.URL.Query())

	matched := domain.FilterItems(c.Catalog.Snapshot(), filters)
	sorted := domain.SortItems(matched, sortKey)
	pageItems, effectivePage, totalPages := domain.Paginate(sorted, pageSize, page)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(ItemsListResponse{
		Data: pageItems,
		Metadata: ItemsListMetadata{
			Page:       effectivePage,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalCount: len(matched),
		},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write items to response", "error", err)
	}
}
