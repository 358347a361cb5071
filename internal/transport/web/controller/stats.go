package controller

import (
	"encoding/json"
	"net/http"

	"github.com/privacytools/directory/internal/domain"
	"github.com/privacytools/directory/internal/store"
)

// StatsProvider computes headline counts over the current catalog.
type StatsProvider interface {
	Stats() store.Stats
	ActiveTags() []string
}

type StatsGet struct {
	Catalog StatsProvider
}

type statsResponse struct {
	store.Stats
	Tags []string `json:"tags"`
}

func (c StatsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(statsResponse{
		Stats: c.Catalog.Stats(),
		Tags:  c.Catalog.ActiveTags(),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write stats to response", "error", err)
	}
}
