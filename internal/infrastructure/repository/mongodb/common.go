// Package mongodb implements the domain repositories on top of MongoDB.
package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// HandleMongoError converts a MongoDB error into a domain error.
// returns:
//   - nil if err == nil
//   - errs.ErrNotFound when no document matched
//   - a wrapped error for everything else
func HandleMongoError(err error, resourceType string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}

	return fmt.Errorf("failed to operate on %s: %w", resourceType, err)
}

// FindWithSort returns find options sorting by the given fields.
func FindWithSort(sort bson.D) *options.FindOptionsBuilder {
	return options.Find().SetSort(sort)
}

// FindWithPagination returns find options with sort, skip and limit applied.
// Zero offset and limit are no-ops server-side.
func FindWithPagination(sort bson.D, offset, limit int) *options.FindOptionsBuilder {
	return options.Find().
		SetSort(sort).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
}
