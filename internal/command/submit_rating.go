package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

// ErrItemNotFound is returned for an operation against an unknown item.
var ErrItemNotFound = errors.New("item not found")

// ItemCatalog is the slice of the item store commands mutate.
type ItemCatalog interface {
	Get(id int64) (domain.Item, bool)
	ApplyRating(id int64, rating float64, ratingsCount int) bool
	Add(item domain.Item) domain.Item
}

// SubmitRatingRequest is the request for the SubmitRating command.
type SubmitRatingRequest struct {
	ItemID int64
	Rating int
}

// SubmitRating folds a star rating into an item's aggregate, persists the
// aggregate, and records the user's rating in the ledger.
type SubmitRating struct {
	Catalog ItemCatalog
	Ledger  datasources.RatingStore
	// Writer persists the updated item when the catalog source supports
	// writes; may be nil.
	Writer datasources.ItemWriter
}

func NewSubmitRating(catalog ItemCatalog, ledger datasources.RatingStore, writer datasources.ItemWriter) *SubmitRating {
	return &SubmitRating{Catalog: catalog, Ledger: ledger, Writer: writer}
}

// Execute validates the rating before any state changes, then applies the
// running-mean fold and persists both sides of it.
func (c *SubmitRating) Execute(ctx context.Context, req SubmitRatingRequest) (domain.Item, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.Item{}, domain.ErrInvalidRating
	}

	item, ok := c.Catalog.Get(req.ItemID)
	if !ok {
		return domain.Item{}, fmt.Errorf("submitting rating for item %d: %w", req.ItemID, ErrItemNotFound)
	}

	previous, err := c.Ledger.UserRating(ctx, req.ItemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("reading previous rating: %w", err)
	}

	updated, err := domain.SubmitRating(item, req.Rating, previous)
	if err != nil {
		return domain.Item{}, err
	}

	// The ledger write goes first: if it fails the aggregate is left
	// untouched, so the recorded previous rating and the fold stay in step
	// for the next submission.
	if err := c.Ledger.SetUserRating(ctx, req.ItemID, req.Rating); err != nil {
		return domain.Item{}, fmt.Errorf("recording user rating: %w", err)
	}
	c.Catalog.ApplyRating(updated.ID, updated.Rating, updated.RatingsCount)

	if c.Writer != nil {
		if err := c.Writer.UpsertItem(ctx, updated); err != nil {
			// The in-memory state is already consistent; losing the
			// write only costs durability, so log and carry on.
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "failed to persist updated item rating",
				"item_id", updated.ID, "error", err)
		}
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "submitted rating",
		"item_id", req.ItemID, "rating", req.Rating, "previous", previous,
		"aggregate", updated.Rating, "count", updated.RatingsCount)

	return updated, nil
}
