package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/domain"
)

type ItemCreate struct {
	AddItemCmd command.Command[command.AddItemRequest, domain.Item]
}

type itemCreateErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func (c ItemCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req command.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to parse item submission", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	item, err := c.AddItemCmd.Execute(ctx, req)
	if err != nil {
		var validationErr *command.ValidationError
		if errors.As(err, &validationErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			if err := json.NewEncoder(w).Encode(itemCreateErrorResponse{Errors: validationErr.Fields}); err != nil {
				logger.ErrorContext(ctx, "unable to write validation errors to response", "error", err)
			}
			return
		}

		logger.ErrorContext(ctx, "failed to add item", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		logger.ErrorContext(ctx, "unable to write created item to response", "error", err)
	}
}
