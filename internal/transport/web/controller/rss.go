package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"

	"github.com/privacytools/directory/internal/domain"
)

const rssItemLimit = 20

// RSS serves a feed of the most recently added catalog items, newest
// first by ID.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Catalog         CatalogSnapshotter
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Privacy Tools Directory",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of tools recently added to the privacy tools directory",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	newest := domain.SortItems(c.Catalog.Snapshot(), domain.SortKeyNewest)
	if len(newest) > rssItemLimit {
		newest = newest[:rssItemLimit]
	}

	for _, item := range newest {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(item.ID, 10),
			IsPermaLink: "false",
			Title:       item.Name,
			Link:        &feeds.Link{Href: item.URL},
			Description: item.Description,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
