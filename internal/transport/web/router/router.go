package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/domain"
	"github.com/privacytools/directory/internal/store"
	"github.com/privacytools/directory/internal/transport/web/controller"
)

func MakeRouter(
	catalog *store.ItemStore,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	pageSizeDefault, pageSizeMax int,
	submitRatingCmd command.Command[command.SubmitRatingRequest, domain.Item],
	addItemCmd command.Command[command.AddItemRequest, domain.Item],
	exportCmd command.Command[command.Empty, domain.RatingsExport],
	importCmd command.Command[command.ImportRatingsRequest, command.ImportRatingsResult],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/items", controller.ItemsList{
		Catalog:         catalog,
		CacheMaxAge:     latestCacheMaxAge,
		PageSizeDefault: pageSizeDefault,
		PageSizeMax:     pageSizeMax,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/items", controller.ItemCreate{
		AddItemCmd: addItemCmd,
	}).Methods(http.MethodPost)

	r.Handle("/v1/items/{item_id:[0-9]+}", controller.ItemGet{
		Catalog: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/items/{item_id:[0-9]+}/rating/{rating}", controller.RatingSubmit{
		SubmitRatingCmd: submitRatingCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ratings/export", controller.RatingsExport{
		ExportCmd: exportCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ratings/import", controller.RatingsImport{
		ImportCmd: importCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/stats", controller.StatsGet{
		Catalog: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/categories", controller.CategoriesList{}).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Catalog:         catalog,
		CacheMaxAge:     latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
