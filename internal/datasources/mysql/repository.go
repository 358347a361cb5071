package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

var _ datasources.CatalogSource = (*Repository)(nil)
var _ datasources.ItemWriter = (*Repository)(nil)

// Repository reads and writes catalog items in the items table. Tags and
// open-schema extra fields are stored as JSON columns.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var itemColumns = []string{
	"id", "name", "url", "description", "category", "tags",
	"open_source", "decentralized", "privacy_level", "rating", "ratings_count", "extra",
}

func (r *Repository) FetchCatalog(ctx context.Context) ([]domain.Item, error) {
	sb := sqlbuilder.Select(itemColumns...)
	sb.From("items")
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running items query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return items, nil
}

func scanItem(rows *sql.Rows) (domain.Item, error) {
	var item domain.Item
	var tags, extra sql.NullString
	var privacyLevel string

	if err := rows.Scan(
		&item.ID,
		&item.Name,
		&item.URL,
		&item.Description,
		&item.Category,
		&tags,
		&item.OpenSource,
		&item.Decentralized,
		&privacyLevel,
		&item.Rating,
		&item.RatingsCount,
		&extra,
	); err != nil {
		return domain.Item{}, err
	}

	item.PrivacyLevel = domain.PrivacyLevel(privacyLevel)
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &item.Tags); err != nil {
			return domain.Item{}, fmt.Errorf("decoding tags for item %d: %w", item.ID, err)
		}
	}
	if extra.Valid && extra.String != "" {
		if err := json.Unmarshal([]byte(extra.String), &item.Extra); err != nil {
			return domain.Item{}, fmt.Errorf("decoding extra fields for item %d: %w", item.ID, err)
		}
	}
	if item.RatingsCount == 0 && item.Rating == 0 {
		item.Rating = domain.DefaultRating
	}
	return item, nil
}

func (r *Repository) UpsertItem(ctx context.Context, item domain.Item) error {
	tags, err := encodeJSONColumn(item.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags for item %d: %w", item.ID, err)
	}
	extra, err := encodeJSONColumn(item.Extra)
	if err != nil {
		return fmt.Errorf("encoding extra fields for item %d: %w", item.ID, err)
	}

	ib := sqlbuilder.InsertInto("items")
	ib.Cols(itemColumns...)
	ib.Values(
		item.ID, item.Name, item.URL, item.Description, item.Category, tags,
		item.OpenSource, item.Decentralized, string(item.PrivacyLevel),
		item.Rating, item.RatingsCount, extra,
	)
	ib.SQL("ON DUPLICATE KEY UPDATE " +
		"name = VALUES(name), url = VALUES(url), description = VALUES(description), " +
		"category = VALUES(category), tags = VALUES(tags), open_source = VALUES(open_source), " +
		"decentralized = VALUES(decentralized), privacy_level = VALUES(privacy_level), " +
		"rating = VALUES(rating), ratings_count = VALUES(ratings_count), extra = VALUES(extra)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting item %d: %w", item.ID, err)
	}
	return nil
}

func encodeJSONColumn(v any) (sql.NullString, error) {
	switch value := v.(type) {
	case []string:
		if value == nil {
			return sql.NullString{}, nil
		}
	case map[string]json.RawMessage:
		if value == nil {
			return sql.NullString{}, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
