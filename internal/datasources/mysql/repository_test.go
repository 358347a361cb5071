package mysql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacytools/directory/internal/domain"
)

func mockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

const selectItemsQuery = "SELECT id, name, url, description, category, tags, " +
	"open_source, decentralized, privacy_level, rating, ratings_count, extra " +
	"FROM items ORDER BY id"

func TestRepository_FetchCatalog(t *testing.T) {
	repo, mock := mockRepository(t)

	rows := sqlmock.NewRows([]string{
		"id", "name", "url", "description", "category", "tags",
		"open_source", "decentralized", "privacy_level", "rating", "ratings_count", "extra",
	}).
		AddRow(1, "Signal", "https://signal.org", "Encrypted messenger", "messaging",
			`["encryption","e2ee"]`, true, false, "high", 4.5, 12, `{"platforms":["android","ios"]}`).
		AddRow(2, "Tor Browser", "https://www.torproject.org", "Anonymity-focused browser", "browser",
			nil, true, true, "high", 0.0, 0, nil)

	mock.ExpectQuery(selectItemsQuery).WillReturnRows(rows)

	items, err := repo.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"encryption", "e2ee"}, items[0].Tags)
	assert.Equal(t, domain.PrivacyLevelHigh, items[0].PrivacyLevel)
	assert.JSONEq(t, `["android","ios"]`, string(items[0].Extra["platforms"]))

	assert.Nil(t, items[1].Tags)
	assert.Nil(t, items[1].Extra)
	assert.Equal(t, domain.DefaultRating, items[1].Rating)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchCatalog_BadTags(t *testing.T) {
	repo, mock := mockRepository(t)

	rows := sqlmock.NewRows([]string{
		"id", "name", "url", "description", "category", "tags",
		"open_source", "decentralized", "privacy_level", "rating", "ratings_count", "extra",
	}).
		AddRow(1, "Signal", "https://signal.org", "Encrypted messenger", "messaging",
			"not json", true, false, "high", 4.5, 12, nil)

	mock.ExpectQuery(selectItemsQuery).WillReturnRows(rows)

	_, err := repo.FetchCatalog(context.Background())
	assert.ErrorContains(t, err, "decoding tags for item 1")
}

func TestRepository_UpsertItem(t *testing.T) {
	repo, mock := mockRepository(t)

	mock.ExpectExec("INSERT INTO items (id, name, url, description, category, tags, "+
		"open_source, decentralized, privacy_level, rating, ratings_count, extra) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) "+
		"ON DUPLICATE KEY UPDATE "+
		"name = VALUES(name), url = VALUES(url), description = VALUES(description), "+
		"category = VALUES(category), tags = VALUES(tags), open_source = VALUES(open_source), "+
		"decentralized = VALUES(decentralized), privacy_level = VALUES(privacy_level), "+
		"rating = VALUES(rating), ratings_count = VALUES(ratings_count), extra = VALUES(extra)").
		WithArgs(
			int64(1), "Signal", "https://signal.org", "Encrypted messenger", "messaging",
			`["encryption"]`, true, false, "high", 4.5, 12, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertItem(context.Background(), domain.Item{
		ID:           1,
		Name:         "Signal",
		URL:          "https://signal.org",
		Description:  "Encrypted messenger",
		Category:     "messaging",
		Tags:         []string{"encryption"},
		OpenSource:   true,
		PrivacyLevel: domain.PrivacyLevelHigh,
		Rating:       4.5,
		RatingsCount: 12,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertItem_NullJSONColumns(t *testing.T) {
	var tags, extra any = []string(nil), map[string]json.RawMessage(nil)

	for _, v := range []any{tags, extra} {
		got, err := encodeJSONColumn(v)
		require.NoError(t, err)
		assert.False(t, got.Valid)
	}

	got, err := encodeJSONColumn([]string{"vpn"})
	require.NoError(t, err)
	assert.Equal(t, `["vpn"]`, got.String)
}
