// Package store holds the working catalog for the process lifetime.
//
// The catalog is installed once at startup and replaced wholesale by
// refreshes; queries run against copied snapshots, so a refresh landing
// mid-session never disturbs a client's active filters. The only in-place
// mutations are rating folds and local additions.
package store

import (
	"sort"
	"sync"

	"github.com/privacytools/directory/internal/domain"
)

// Stats are the headline counts shown alongside the catalog.
type Stats struct {
	Total         int `json:"total"`
	OpenSource    int `json:"open_source"`
	Decentralized int `json:"decentralized"`
}

// ItemStore is the mutable, guarded collection of catalog items.
type ItemStore struct {
	mu       sync.RWMutex
	items    []domain.Item
	seq      uint64 // sequence number of the installed catalog
	fetchSeq uint64 // last allocated fetch sequence number
}

func New() *ItemStore {
	return &ItemStore{}
}

// Replace installs a freshly fetched catalog. seq is a monotonic fetch
// sequence number: a result arriving after a newer fetch has already
// landed is dropped, and Replace reports whether the catalog was
// installed. Locally added items (IDs above the incoming catalog's range)
// are carried over.
func (s *ItemStore) Replace(seq uint64, items []domain.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.seq {
		return false
	}

	maxID := int64(0)
	replacement := make([]domain.Item, 0, len(items))
	for _, item := range items {
		replacement = append(replacement, item.Clone())
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	for _, item := range s.items {
		if item.ID > maxID {
			replacement = append(replacement, item)
		}
	}

	s.seq = seq
	s.items = replacement
	return true
}

// NextSeq allocates the sequence number for a fetch about to start.
func (s *ItemStore) NextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchSeq++
	return s.fetchSeq
}

// Snapshot returns a copy of the catalog for one query pipeline run.
func (s *ItemStore) Snapshot() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.Clone())
	}
	return items
}

// Get returns the item with the given ID.
func (s *ItemStore) Get(id int64) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return domain.Item{}, false
}

// ApplyRating folds an updated aggregate into the stored item.
func (s *ItemStore) ApplyRating(id int64, rating float64, ratingsCount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Rating = rating
			s.items[i].RatingsCount = ratingsCount
			return true
		}
	}
	return false
}

// Add inserts a locally created item, assigning the next free ID, and
// returns the stored item.
func (s *ItemStore) Add(item domain.Item) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, existing := range s.items {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	item.ID = maxID + 1
	if item.RatingsCount == 0 {
		item.Rating = domain.DefaultRating
	}
	s.items = append(s.items, item.Clone())
	return item
}

// MergeLocal folds locally persisted items back in after a catalog
// load. Items unknown to the upstream catalog are appended with their
// persisted IDs; for items the catalog does know, only the persisted
// rating aggregate is restored, so upstream edits to the other fields
// win.
func (s *ItemStore) MergeLocal(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[int64]int, len(s.items))
	for i, item := range s.items {
		byID[item.ID] = i
	}

	for _, item := range items {
		if i, ok := byID[item.ID]; ok {
			s.items[i].Rating = item.Rating
			s.items[i].RatingsCount = item.RatingsCount
			continue
		}
		s.items = append(s.items, item.Clone())
	}
}

// Len returns the number of items currently held.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Stats computes the headline counts over the current catalog.
func (s *ItemStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Total: len(s.items)}
	for _, item := range s.items {
		if item.OpenSource {
			stats.OpenSource++
		}
		if item.Decentralized {
			stats.Decentralized++
		}
	}
	return stats
}

// ActiveTags returns every tag present in the catalog, sorted, for
// building tag filter controls.
func (s *ItemStore) ActiveTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	for _, item := range s.items {
		for _, tag := range item.Tags {
			seen[tag] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
