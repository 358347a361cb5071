package datasources

import (
	"context"

	"github.com/privacytools/directory/internal/domain"
)

// CatalogSource provides the full catalog from wherever it lives.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]domain.Item, error)
}

// ItemWriter persists catalog mutations (local additions, rating folds)
// for sources that support them.
type ItemWriter interface {
	UpsertItem(ctx context.Context, item domain.Item) error
}

// RatingStore is the persisted ledger of the user's own ratings, one
// entry per rated item.
type RatingStore interface {
	// UserRating returns the user's last rating for an item, 0 if none.
	UserRating(ctx context.Context, itemID int64) (int, error)

	// SetUserRating records the user's rating, overwriting any previous
	// rating for the same item.
	SetUserRating(ctx context.Context, itemID int64, rating int) error

	// AllRatings returns the full ledger mapping.
	AllRatings(ctx context.Context) (map[int64]int, error)

	// MergeRatings folds imported entries into the ledger; incoming
	// values win on collision.
	MergeRatings(ctx context.Context, ratings map[int64]int) error
}
