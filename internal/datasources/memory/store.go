// Package memory is a map-backed rating store for tests and ephemeral
// deployments.
package memory

import (
	"context"
	"sync"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

var _ datasources.RatingStore = (*RatingStore)(nil)

type RatingStore struct {
	mu      sync.RWMutex
	ratings map[int64]int
}

func NewRatingStore() *RatingStore {
	return &RatingStore{ratings: map[int64]int{}}
}

func (s *RatingStore) UserRating(_ context.Context, itemID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ratings[itemID], nil
}

func (s *RatingStore) SetUserRating(_ context.Context, itemID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return domain.ErrInvalidRating
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[itemID] = rating
	return nil
}

func (s *RatingStore) AllRatings(_ context.Context) (map[int64]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := make(map[int64]int, len(s.ratings))
	for itemID, rating := range s.ratings {
		ratings[itemID] = rating
	}
	return ratings, nil
}

func (s *RatingStore) MergeRatings(_ context.Context, ratings map[int64]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for itemID, rating := range ratings {
		s.ratings[itemID] = rating
	}
	return nil
}
