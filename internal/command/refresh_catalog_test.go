package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacytools/directory/internal/domain"
	"github.com/privacytools/directory/internal/store"
)

type fakeCatalogSource struct {
	items []domain.Item
	err   error
	// onFetch runs inside the fetch, between sequence allocation and
	// installation, to model a concurrent faster fetch.
	onFetch func()
}

func (f *fakeCatalogSource) FetchCatalog(_ context.Context) ([]domain.Item, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	return f.items, f.err
}

func TestRefreshCatalog_Execute(t *testing.T) {
	ctx := testContext()

	fallback := []domain.Item{{ID: 1, Name: "Fallback", Rating: domain.DefaultRating}}
	fetched := []domain.Item{
		{ID: 1, Name: "Signal", Rating: domain.DefaultRating},
		{ID: 2, Name: "Firefox", Rating: domain.DefaultRating},
	}

	t.Run("installs_fetched_catalog", func(t *testing.T) {
		s := store.New()
		cmd := NewRefreshCatalog(&fakeCatalogSource{items: fetched}, s, fallback)

		result, err := cmd.Execute(ctx, Empty{})
		require.NoError(t, err)
		assert.True(t, result.Installed)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("fetch_failure_on_empty_store_uses_fallback", func(t *testing.T) {
		s := store.New()
		cmd := NewRefreshCatalog(&fakeCatalogSource{err: errors.New("connection refused")}, s, fallback)

		result, err := cmd.Execute(ctx, Empty{})
		require.NoError(t, err)
		assert.True(t, result.Installed)
		assert.Equal(t, 1, s.Len())

		item, ok := s.Get(1)
		require.True(t, ok)
		assert.Equal(t, "Fallback", item.Name)
	})

	t.Run("refresh_failure_keeps_last_good_catalog", func(t *testing.T) {
		s := store.New()
		require.True(t, s.Replace(s.NextSeq(), fetched))

		cmd := NewRefreshCatalog(&fakeCatalogSource{err: errors.New("timeout")}, s, fallback)
		_, err := cmd.Execute(ctx, Empty{})
		require.Error(t, err)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("stale_fetch_dropped", func(t *testing.T) {
		s := store.New()

		// While the slow fetch is in flight, a newer fetch completes.
		slow := &fakeCatalogSource{
			items: []domain.Item{{ID: 9, Name: "Stale"}},
			onFetch: func() {
				require.True(t, s.Replace(s.NextSeq(), fetched))
			},
		}

		result, err := NewRefreshCatalog(slow, s, nil).Execute(ctx, Empty{})
		require.NoError(t, err)
		assert.False(t, result.Installed)

		_, ok := s.Get(9)
		assert.False(t, ok)
		assert.Equal(t, 2, s.Len())
	})
}
