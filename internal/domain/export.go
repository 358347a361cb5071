package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// RatingsExport is the interchange format for a user's rating ledger.
// Item IDs are serialized as strings.
type RatingsExport struct {
	ExportedAt time.Time      `json:"exportedAt"`
	Ratings    map[string]int `json:"ratings"`
}

// NewRatingsExport builds an export document from a ledger mapping.
func NewRatingsExport(ratings map[int64]int, now time.Time) RatingsExport {
	out := RatingsExport{
		ExportedAt: now.UTC(),
		Ratings:    make(map[string]int, len(ratings)),
	}
	for itemID, rating := range ratings {
		out.Ratings[strconv.FormatInt(itemID, 10)] = rating
	}
	return out
}

// ParseRatingsExport decodes and validates an export document. A payload
// that is not valid JSON, lacks the ratings field, or carries an
// out-of-range rating or unparseable item ID is rejected wholesale, so an
// import never partially merges.
func ParseRatingsExport(data []byte) (map[int64]int, error) {
	var doc struct {
		ExportedAt *time.Time      `json:"exportedAt"`
		Ratings    *map[string]int `json:"ratings"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing ratings export: %w", err)
	}
	if doc.Ratings == nil {
		return nil, fmt.Errorf("ratings export is missing the ratings field")
	}

	ratings := make(map[int64]int, len(*doc.Ratings))
	for rawID, rating := range *doc.Ratings {
		itemID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item id [%s] in ratings export", rawID)
		}
		if rating < 1 || rating > 5 {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrInvalidRating)
		}
		ratings[itemID] = rating
	}
	return ratings, nil
}
