package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names as constants for consistency.
const (
	CollectionUsers     = "users"
	CollectionArtworks  = "artworks"
	CollectionFavorites = "favorites"
)

// IndexDefinition describes a MongoDB index to be created.
type IndexDefinition struct {
	Collection string
	Keys       bson.D
	Options    *options.IndexOptionsBuilder
}

// CreateAllIndexes creates all necessary indexes for the application.
// This function is idempotent - calling it multiple times is safe.
func CreateAllIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range GetAllIndexDefinitions() {
		coll := db.Collection(idx.Collection)
		model := mongo.IndexModel{
			Keys:    idx.Keys,
			Options: idx.Options,
		}

		if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on collection %s: %w", idx.Collection, err)
		}
	}

	return nil
}

// GetAllIndexDefinitions returns all index definitions for all collections.
func GetAllIndexDefinitions() []IndexDefinition {
	var indexes []IndexDefinition

	indexes = append(indexes, GetUserIndexes()...)
	indexes = append(indexes, GetArtworkIndexes()...)
	indexes = append(indexes, GetFavoriteIndexes()...)

	return indexes
}

// GetUserIndexes returns index definitions for the users collection.
func GetUserIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// Emails are unique across all users
			Collection: CollectionUsers,
			Keys:       bson.D{{Key: "email", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("idx_users_email_unique"),
		},
	}
}

// GetArtworkIndexes returns index definitions for the artworks collection.
func GetArtworkIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// Owner listing, newest first
			Collection: CollectionArtworks,
			Keys:       bson.D{{Key: "artist_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options:    options.Index().SetName("idx_artworks_artist_created"),
		},
		{
			// Public feed sorted by creation time
			Collection: CollectionArtworks,
			Keys:       bson.D{{Key: "visibility", Value: 1}, {Key: "created_at", Value: -1}},
			Options:    options.Index().SetName("idx_artworks_visibility_created"),
		},
		{
			// Featured listing sorted by like count
			Collection: CollectionArtworks,
			Keys:       bson.D{{Key: "visibility", Value: 1}, {Key: "likes", Value: -1}},
			Options:    options.Index().SetName("idx_artworks_visibility_likes"),
		},
		{
			// Exact category filter on the public feed
			Collection: CollectionArtworks,
			Keys:       bson.D{{Key: "category", Value: 1}},
			Options:    options.Index().SetName("idx_artworks_category"),
		},
	}
}

// GetFavoriteIndexes returns index definitions for the favorites collection.
func GetFavoriteIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// At most one favorite per (user, artwork) pair; also backs the
			// per-user listing
			Collection: CollectionFavorites,
			Keys:       bson.D{{Key: "user_id", Value: 1}, {Key: "artwork_id", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("idx_favorites_user_artwork_unique"),
		},
		{
			// Cascade delete when an artwork is removed
			Collection: CollectionFavorites,
			Keys:       bson.D{{Key: "artwork_id", Value: 1}},
			Options:    options.Index().SetName("idx_favorites_artwork"),
		},
	}
}
