package command

import (
	"context"
	"fmt"
	"time"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

// ExportRatings produces the portable export document for the user's
// rating ledger.
type ExportRatings struct {
	Ledger datasources.RatingStore
	// Now allows tests to pin the export timestamp; time.Now if nil.
	Now func() time.Time
}

func NewExportRatings(ledger datasources.RatingStore) *ExportRatings {
	return &ExportRatings{Ledger: ledger}
}

func (c *ExportRatings) Execute(ctx context.Context, _ Empty) (domain.RatingsExport, error) {
	ratings, err := c.Ledger.AllRatings(ctx)
	if err != nil {
		return domain.RatingsExport{}, fmt.Errorf("reading rating ledger: %w", err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return domain.NewRatingsExport(ratings, now()), nil
}
