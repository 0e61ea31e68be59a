// Package favorite contains the favorite entity linking users to artworks.
package favorite

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Favorite marks an artwork as saved by a user. At most one favorite exists
// per (user, artwork) pair; the unique index on the collection enforces this.
type Favorite struct {
	ID        bson.ObjectID
	UserID    bson.ObjectID
	ArtworkID bson.ObjectID
	CreatedAt time.Time
}

// New creates a favorite for the given user and artwork.
func New(userID, artworkID bson.ObjectID) *Favorite {
	return &Favorite{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		ArtworkID: artworkID,
		CreatedAt: time.Now().UTC(),
	}
}
