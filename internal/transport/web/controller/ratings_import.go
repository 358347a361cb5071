package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/domain"
)

const maxImportBytes = 1 << 20

type RatingsImport struct {
	ImportCmd command.Command[command.ImportRatingsRequest, command.ImportRatingsResult]
}

type ratingsImportResponse struct {
	Imported int `json:"imported"`
}

type ratingsImportErrorResponse struct {
	Error string `json:"error"`
}

func (c RatingsImport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		logger.ErrorContext(ctx, "unable to read import payload", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.ImportCmd.Execute(ctx, command.ImportRatingsRequest{Payload: payload})
	if errors.Is(err, command.ErrMalformedImport) {
		logger.ErrorContext(ctx, "rejected ratings import", "error", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encErr := json.NewEncoder(w).Encode(ratingsImportErrorResponse{Error: err.Error()}); encErr != nil {
			logger.ErrorContext(ctx, "unable to write import error to response", "error", encErr)
		}
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to import ratings", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ratingsImportResponse{Imported: result.Imported}); err != nil {
		logger.ErrorContext(ctx, "unable to write import result to response", "error", err)
	}
}
