package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

// ErrMalformedImport marks an import payload the user needs to fix, as
// opposed to a storage failure.
var ErrMalformedImport = errors.New("malformed ratings import")

// ImportRatingsRequest carries a raw export document as received.
type ImportRatingsRequest struct {
	Payload []byte
}

// ImportRatingsResult reports how many ledger entries were merged.
type ImportRatingsResult struct {
	Imported int
}

// ImportRatings merges an exported ledger into the user's own. Incoming
// values win on collision. Item aggregates are not recomputed for
// imported entries: the aggregate only ever learns about a rating when it
// is submitted through SubmitRating, so an imported rating influences the
// aggregate the next time the user revises it.
type ImportRatings struct {
	Ledger datasources.RatingStore
}

func NewImportRatings(ledger datasources.RatingStore) *ImportRatings {
	return &ImportRatings{Ledger: ledger}
}

func (c *ImportRatings) Execute(ctx context.Context, req ImportRatingsRequest) (ImportRatingsResult, error) {
	ratings, err := domain.ParseRatingsExport(req.Payload)
	if err != nil {
		return ImportRatingsResult{}, fmt.Errorf("%w: %s", ErrMalformedImport, err)
	}

	if err := c.Ledger.MergeRatings(ctx, ratings); err != nil {
		return ImportRatingsResult{}, fmt.Errorf("merging imported ratings: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "imported ratings", "count", len(ratings))

	return ImportRatingsResult{Imported: len(ratings)}, nil
}
