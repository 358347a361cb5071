package controller

import (
	"encoding/json"
	"net/http"

	"github.com/privacytools/directory/internal/domain"
)

type CategoriesList struct{}

type categoriesResponse struct {
	Data []domain.CategoryLabel `json:"data"`
}

func (c CategoriesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categoriesResponse{Data: domain.CategoryLabels()}); err != nil {
		logger.ErrorContext(ctx, "unable to write categories to response", "error", err)
	}
}
