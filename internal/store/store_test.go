package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacytools/directory/internal/domain"
)

func testItems() []domain.Item {
	return []domain.Item{
		{ID: 1, Name: "Signal", Category: "messaging", OpenSource: true, Rating: domain.DefaultRating},
		{ID: 2, Name: "Element", Category: "messaging", OpenSource: true, Decentralized: true, Tags: []string{"federation"}, Rating: domain.DefaultRating},
		{ID: 3, Name: "DuckDuckGo", Category: "search", Rating: domain.DefaultRating},
	}
}

func TestItemStore_ReplaceAndSnapshot(t *testing.T) {
	s := New()

	seq := s.NextSeq()
	require.True(t, s.Replace(seq, testItems()))
	assert.Equal(t, 3, s.Len())

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 3)

	// Mutating the snapshot must not leak into the store.
	snapshot[1].Tags[0] = "changed"
	item, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, []string{"federation"}, item.Tags)
}

func TestItemStore_StaleReplaceDropped(t *testing.T) {
	s := New()

	slowSeq := s.NextSeq()
	fastSeq := s.NextSeq()

	require.True(t, s.Replace(fastSeq, testItems()))

	// The slower fetch finishes afterwards with older data.
	assert.False(t, s.Replace(slowSeq, []domain.Item{{ID: 99, Name: "Stale"}}))
	assert.Equal(t, 3, s.Len())
	_, ok := s.Get(99)
	assert.False(t, ok)
}

func TestItemStore_ReplaceCarriesLocalAdditions(t *testing.T) {
	s := New()
	require.True(t, s.Replace(s.NextSeq(), testItems()))

	added := s.Add(domain.Item{Name: "Jitsi", Category: "productivity"})
	assert.Equal(t, int64(4), added.ID)
	assert.Equal(t, domain.DefaultRating, added.Rating)

	// A refresh with the upstream catalog keeps the local addition.
	require.True(t, s.Replace(s.NextSeq(), testItems()))
	assert.Equal(t, 4, s.Len())
	_, ok := s.Get(4)
	assert.True(t, ok)
}

func TestItemStore_ApplyRating(t *testing.T) {
	s := New()
	require.True(t, s.Replace(s.NextSeq(), testItems()))

	require.True(t, s.ApplyRating(3, 5.0, 1))
	item, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, 5.0, item.Rating)
	assert.Equal(t, 1, item.RatingsCount)

	assert.False(t, s.ApplyRating(77, 5.0, 1))
}

func TestItemStore_MergeLocal(t *testing.T) {
	s := New()
	require.True(t, s.Replace(s.NextSeq(), testItems()))

	s.MergeLocal([]domain.Item{
		// Known item: only the rating aggregate is restored.
		{ID: 1, Name: "Old Name", Rating: 4.5, RatingsCount: 2},
		// Unknown item: appended as-is.
		{ID: 10, Name: "Standard Notes", Category: "productivity", Rating: domain.DefaultRating},
	})

	item, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Signal", item.Name)
	assert.Equal(t, 4.5, item.Rating)
	assert.Equal(t, 2, item.RatingsCount)

	_, ok = s.Get(10)
	assert.True(t, ok)
	assert.Equal(t, 4, s.Len())
}

func TestItemStore_Stats(t *testing.T) {
	s := New()
	require.True(t, s.Replace(s.NextSeq(), testItems()))

	stats := s.Stats()
	assert.Equal(t, Stats{Total: 3, OpenSource: 2, Decentralized: 1}, stats)
}

func TestItemStore_ActiveTags(t *testing.T) {
	s := New()
	require.True(t, s.Replace(s.NextSeq(), []domain.Item{
		{ID: 1, Tags: []string{"b", "a"}},
		{ID: 2, Tags: []string{"a", "c"}},
		{ID: 3},
	}))

	assert.Equal(t, []string{"a", "b", "c"}, s.ActiveTags())
}
