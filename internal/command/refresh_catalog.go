package command

import (
	"context"
	"fmt"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

// CatalogStore is the slice of the item store a refresh needs.
type CatalogStore interface {
	NextSeq() uint64
	Replace(seq uint64, items []domain.Item) bool
	Len() int
}

// RefreshCatalogResult reports what a refresh cycle did.
type RefreshCatalogResult struct {
	Installed bool
	Count     int
}

// RefreshCatalog runs one fetch-and-replace cycle against the item
// store. The sequence number is allocated before the fetch starts, so a
// slow fetch that is overtaken by a newer one gets dropped instead of
// clobbering fresher data.
type RefreshCatalog struct {
	Source datasources.CatalogSource
	Store  CatalogStore
	// Fallback is installed if the very first fetch fails, so the
	// directory never starts empty. Later refresh failures keep the last
	// good catalog instead.
	Fallback []domain.Item
}

func NewRefreshCatalog(source datasources.CatalogSource, store CatalogStore, fallback []domain.Item) *RefreshCatalog {
	return &RefreshCatalog{Source: source, Store: store, Fallback: fallback}
}

func (c *RefreshCatalog) Execute(ctx context.Context, _ Empty) (RefreshCatalogResult, error) {
	logger := domain.LoggerFromContext(ctx)

	seq := c.Store.NextSeq()
	items, err := c.Source.FetchCatalog(ctx)
	if err != nil {
		if c.Store.Len() == 0 && len(c.Fallback) > 0 {
			logger.WarnContext(ctx, "catalog fetch failed, using fallback catalog", "error", err)
			installed := c.Store.Replace(seq, c.Fallback)
			return RefreshCatalogResult{Installed: installed, Count: len(c.Fallback)}, nil
		}
		return RefreshCatalogResult{}, fmt.Errorf("fetching catalog: %w", err)
	}

	installed := c.Store.Replace(seq, items)
	if !installed {
		logger.DebugContext(ctx, "dropped stale catalog fetch", "seq", seq)
		return RefreshCatalogResult{}, nil
	}

	logger.InfoContext(ctx, "installed catalog", "items", len(items), "seq", seq)
	return RefreshCatalogResult{Installed: true, Count: len(items)}, nil
}
