// Package jsonfile loads the catalog from a static JSON document, either
// a local file or a read-only HTTP resource.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

var _ datasources.CatalogSource = (*Source)(nil)

// Source fetches a catalog document of the form {"tools": [...]}.
type Source struct {
	// Location is a filesystem path or an http(s) URL.
	Location string
	// Client is used for URL locations; http.DefaultClient if nil.
	Client *http.Client
}

const fetchTimeout = 30 * time.Second

func (s *Source) FetchCatalog(ctx context.Context) ([]domain.Item, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(s.Location, "http://") && !strings.HasPrefix(s.Location, "https://") {
		data, err := os.ReadFile(s.Location)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
		return data, nil
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog: unexpected status [%d]", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}
	return data, nil
}

// ParseCatalog decodes a catalog document. Items with a missing tags
// field come back with nil tags, which the domain treats as empty.
func ParseCatalog(data []byte) ([]domain.Item, error) {
	var doc struct {
		Tools []domain.Item `json:"tools"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog document: %w", err)
	}
	if doc.Tools == nil {
		return nil, fmt.Errorf("catalog document is missing the tools field")
	}
	return doc.Tools, nil
}
