package app

import (
	"context"
	"time"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/domain"
)

// catalogRefresher periodically re-fetches the catalog. A failed refresh
// keeps the last good catalog; a refresh overtaken by a newer one is
// dropped inside the store's sequence guard.
type catalogRefresher struct {
	Interval   time.Duration
	RefreshCmd command.Command[command.Empty, command.RefreshCatalogResult]
}

func (r *catalogRefresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.RefreshCmd.Execute(ctx, command.Empty{}); err != nil {
				logger := domain.LoggerFromContext(ctx)
				logger.WarnContext(ctx, "catalog refresh failed, keeping current catalog", "error", err)
			}
		}
	}
}
