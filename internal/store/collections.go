package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyforge/studyforge-backend/internal/db"
)

// ErrCollectionLimit is returned when a free-plan user tries to create a
// collection beyond their allowance. The handler maps it to HTTP 402.
var ErrCollectionLimit = errors.New("store: collection limit reached")

// CreateCollection inserts a collection, enforcing maxCollections for users
// without an active subscription. A limit of zero means unlimited.
//
// The count and insert run in one serializable transaction so two concurrent
// creates cannot both slip under the limit.
func (s *Store) CreateCollection(ctx context.Context, arg db.CreateCollectionParams, maxCollections int64) (db.Collection, error) {
	var collection db.Collection

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		if maxCollections > 0 {
			count, err := q.CountCollectionsByUser(ctx, arg.UserID)
			if err != nil {
				return fmt.Errorf("CreateCollection: count collections: %w", err)
			}
			if count >= maxCollections {
				return ErrCollectionLimit
			}
		}

		created, err := q.CreateCollection(ctx, arg)
		if err != nil {
			return fmt.Errorf("CreateCollection: insert: %w", err)
		}
		collection = created
		return nil
	})
	if err != nil {
		return db.Collection{}, err
	}
	return collection, nil
}
