package domain

import (
	"encoding/json"
	"fmt"
)

// PrivacyLevel is the ordinal privacy classification of an item.
type PrivacyLevel string

const (
	PrivacyLevelLow    PrivacyLevel = "low"
	PrivacyLevelMedium PrivacyLevel = "medium"
	PrivacyLevelHigh   PrivacyLevel = "high"
)

// Rank maps a privacy level onto its ordinal position, with unknown
// levels ranking below low.
func (p PrivacyLevel) Rank() int {
	switch p {
	case PrivacyLevelHigh:
		return 3
	case PrivacyLevelMedium:
		return 2
	case PrivacyLevelLow:
		return 1
	default:
		return 0
	}
}

func (p PrivacyLevel) Valid() bool {
	return p == PrivacyLevelLow || p == PrivacyLevelMedium || p == PrivacyLevelHigh
}

// DefaultRating is the aggregate rating shown for an item nobody has rated
// yet. It never contributes to a computed mean because the fold multiplies
// it by a zero count.
const DefaultRating = 4.0

// Item is one catalog entry. Fields outside the known set are preserved
// verbatim in Extra across decode/encode, so catalogs carrying additional
// metadata round-trip unchanged.
type Item struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	URL           string       `json:"url"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Tags          []string     `json:"tags,omitempty"`
	OpenSource    bool         `json:"openSource"`
	Decentralized bool         `json:"decentralized"`
	PrivacyLevel  PrivacyLevel `json:"privacyLevel"`
	Rating        float64      `json:"rating"`
	RatingsCount  int          `json:"ratingsCount"`

	Extra map[string]json.RawMessage `json:"-"`
}

// knownItemFields are the JSON keys handled by the typed fields above.
var knownItemFields = map[string]bool{
	"id":            true,
	"name":          true,
	"url":           true,
	"description":   true,
	"category":      true,
	"tags":          true,
	"openSource":    true,
	"decentralized": true,
	"privacyLevel":  true,
	"rating":        true,
	"ratingsCount":  true,
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type itemAlias Item
	var known itemAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	// The numeric privacyScore schema used by some catalogs is
	// incompatible with the ordinal one; refuse it rather than guessing.
	if _, ok := fields["privacyScore"]; ok {
		return fmt.Errorf("item %d: privacyScore schema is not supported, use privacyLevel", known.ID)
	}

	for key := range fields {
		if knownItemFields[key] {
			delete(fields, key)
		}
	}
	if len(fields) == 0 {
		fields = nil
	}

	*i = Item(known)
	i.Extra = fields
	if i.RatingsCount == 0 && i.Rating == 0 {
		i.Rating = DefaultRating
	}
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	type itemAlias Item
	data, err := json.Marshal(itemAlias(i))
	if err != nil {
		return nil, err
	}
	if len(i.Extra) == 0 {
		return data, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for key, value := range i.Extra {
		if !knownItemFields[key] {
			fields[key] = value
		}
	}
	return json.Marshal(fields)
}

// Clone returns a deep copy, so snapshots of the store can be handed out
// without sharing the tags slice or the extra-field map.
func (i Item) Clone() Item {
	clone := i
	if i.Tags != nil {
		clone.Tags = make([]string, len(i.Tags))
		copy(clone.Tags, i.Tags)
	}
	if i.Extra != nil {
		clone.Extra = make(map[string]json.RawMessage, len(i.Extra))
		for key, value := range i.Extra {
			clone.Extra[key] = value
		}
	}
	return clone
}

func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
