// Package badgerdb persists the user's rating ledger and locally added
// catalog items in an embedded Badger key-value store.
package badgerdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/domain"
)

var _ datasources.RatingStore = (*Store)(nil)
var _ datasources.ItemWriter = (*Store)(nil)

const (
	ratingKeyPrefix = "rating:"
	itemKeyPrefix   = "item:"
)

type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func ratingKey(itemID int64) []byte {
	key := make([]byte, len(ratingKeyPrefix)+8)
	copy(key, ratingKeyPrefix)
	binary.BigEndian.PutUint64(key[len(ratingKeyPrefix):], uint64(itemID))
	return key
}

func itemKey(itemID int64) []byte {
	key := make([]byte, len(itemKeyPrefix)+8)
	copy(key, itemKeyPrefix)
	binary.BigEndian.PutUint64(key[len(itemKeyPrefix):], uint64(itemID))
	return key
}

func (s *Store) UserRating(_ context.Context, itemID int64) (int, error) {
	var rating int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ratingKey(itemID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 1 {
				rating = int(val[0])
			}
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("reading user rating: %w", err)
	}
	return rating, nil
}

func (s *Store) SetUserRating(_ context.Context, itemID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return domain.ErrInvalidRating
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ratingKey(itemID), []byte{byte(rating)})
	})
	if err != nil {
		return fmt.Errorf("writing user rating: %w", err)
	}
	return nil
}

func (s *Store) AllRatings(_ context.Context) (map[int64]int, error) {
	ratings := map[int64]int{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(ratingKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			itemID := int64(binary.BigEndian.Uint64(item.Key()[len(ratingKeyPrefix):]))
			if err := item.Value(func(val []byte) error {
				if len(val) == 1 {
					ratings[itemID] = int(val[0])
				}
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing user ratings: %w", err)
	}
	return ratings, nil
}

func (s *Store) MergeRatings(_ context.Context, ratings map[int64]int) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for itemID, rating := range ratings {
			if err := txn.Set(ratingKey(itemID), []byte{byte(rating)}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("merging user ratings: %w", err)
	}
	return nil
}

// UpsertItem persists a locally added or locally mutated item so it
// survives restarts.
func (s *Store) UpsertItem(_ context.Context, item domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding item: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(itemKey(item.ID), data)
	}); err != nil {
		return fmt.Errorf("writing item: %w", err)
	}
	return nil
}

// LocalItems returns every item persisted locally, in ID order by key.
func (s *Store) LocalItems(_ context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(itemKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				var item domain.Item
				if err := json.Unmarshal(val, &item); err != nil {
					return err
				}
				items = append(items, item)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing local items: %w", err)
	}
	return items, nil
}
