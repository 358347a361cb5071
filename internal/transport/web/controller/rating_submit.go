package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/domain"
)

type RatingSubmit struct {
	SubmitRatingCmd command.Command[command.SubmitRatingRequest, domain.Item]
}

func (c RatingSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("item_id", vars["item_id"]))

	itemID, err := strconv.ParseInt(vars["item_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse item id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rating, err := strconv.Atoi(vars["rating"])
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse rating", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	item, err := c.SubmitRatingCmd.Execute(ctx, command.SubmitRatingRequest{
		ItemID: itemID,
		Rating: rating,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		w.WriteHeader(http.StatusBadRequest)
		return
	case errors.Is(err, command.ErrItemNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case err != nil:
		logger.ErrorContext(ctx, "failed to submit rating", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(item); err != nil {
		logger.ErrorContext(ctx, "unable to write updated item to response", "error", err)
	}
}
