package controller

import (
	"encoding/json"
	"net/http"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/domain"
)

type RatingsExport struct {
	ExportCmd command.Command[command.Empty, domain.RatingsExport]
}

func (c RatingsExport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	export, err := c.ExportCmd.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "failed to export ratings", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="ratings-export.json"`)
	if err := json.NewEncoder(w).Encode(export); err != nil {
		logger.ErrorContext(ctx, "unable to write ratings export to response", "error", err)
	}
}
