package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_OpenSchemaRoundTrip(t *testing.T) {
	raw := []byte(`{
		"id": 7,
		"name": "Proton Mail",
		"url": "https://proton.me/mail",
		"description": "Encrypted email",
		"category": "email",
		"tags": ["encryption"],
		"openSource": true,
		"decentralized": false,
		"privacyLevel": "high",
		"rating": 4.2,
		"ratingsCount": 5,
		"jurisdiction": "CH",
		"audit": {"year": 2021, "firm": "SEC Consult"}
	}`)

	var item Item
	require.NoError(t, json.Unmarshal(raw, &item))

	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, PrivacyLevelHigh, item.PrivacyLevel)
	require.Contains(t, item.Extra, "jurisdiction")
	require.Contains(t, item.Extra, "audit")

	out, err := json.Marshal(item)
	require.NoError(t, err)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal(raw, &want))
	assert.Equal(t, want, got)
}

func TestItem_RejectsPrivacyScoreSchema(t *testing.T) {
	raw := []byte(`{"id": 1, "name": "X", "privacyScore": 87}`)

	var item Item
	err := json.Unmarshal(raw, &item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "privacyScore")
}

func TestItem_UnratedDecodesWithDefaultRating(t *testing.T) {
	raw := []byte(`{"id": 1, "name": "X", "url": "https://x.example", "description": "d", "category": "misc", "privacyLevel": "low"}`)

	var item Item
	require.NoError(t, json.Unmarshal(raw, &item))

	assert.Equal(t, DefaultRating, item.Rating)
	assert.Equal(t, 0, item.RatingsCount)
}

func TestItem_Clone(t *testing.T) {
	item := Item{
		ID:    1,
		Tags:  []string{"a"},
		Extra: map[string]json.RawMessage{"k": json.RawMessage(`"v"`)},
	}

	clone := item.Clone()
	clone.Tags[0] = "b"
	clone.Extra["k2"] = json.RawMessage(`1`)

	assert.Equal(t, []string{"a"}, item.Tags)
	assert.NotContains(t, item.Extra, "k2")
}

func TestPrivacyLevel_Rank(t *testing.T) {
	assert.Equal(t, 3, PrivacyLevelHigh.Rank())
	assert.Equal(t, 2, PrivacyLevelMedium.Rank())
	assert.Equal(t, 1, PrivacyLevelLow.Rank())
	assert.Equal(t, 0, PrivacyLevel("mystery").Rank())
}
