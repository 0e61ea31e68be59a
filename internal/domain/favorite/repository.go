package favorite

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the persistence interface for favorites.
type Repository interface {
	// Insert stores a favorite. Inserting an existing (user, artwork) pair
	// is not an error; the unique index suppresses the duplicate and the
	// call reports success.
	Insert(ctx context.Context, f *Favorite) error

	// InsertMany stores a batch of favorites.
	InsertMany(ctx context.Context, favorites []*Favorite) error

	// FindByUserID returns a user's favorites, newest first.
	FindByUserID(ctx context.Context, userID bson.ObjectID) ([]*Favorite, error)

	// Exists reports whether the (user, artwork) favorite exists.
	Exists(ctx context.Context, userID, artworkID bson.ObjectID) (bool, error)

	// Delete removes the (user, artwork) favorite.
	// Returns errs.ErrNotFound when it does not exist.
	Delete(ctx context.Context, userID, artworkID bson.ObjectID) error

	// DeleteByArtworkID removes every favorite referencing the artwork.
	// Used for the cascade when an artwork is deleted.
	DeleteByArtworkID(ctx context.Context, artworkID bson.ObjectID) error

	// DeleteAll wipes the collection. Used by the destructive seed.
	DeleteAll(ctx context.Context) error
}
