package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/privacytools/directory/internal/domain"
)

// ItemGetter looks up a single catalog item by ID.
type ItemGetter interface {
	Get(id int64) (domain.Item, bool)
}

type ItemGet struct {
	Catalog ItemGetter
}

func (c ItemGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	itemID, err := strconv.ParseInt(mux.Vars(r)["item_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse item id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	item, ok := c.Catalog.Get(itemID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(item); err != nil {
		logger.ErrorContext(ctx, "unable to write item to response", "error", err)
	}
}
