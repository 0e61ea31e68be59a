package artwork

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Sort enumerates the feed orderings.
type Sort string

// Supported sort modes.
const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortMostLiked Sort = "most-liked"
)

// ParseSort maps a query parameter to a sort mode, defaulting to newest.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortOldest:
		return SortOldest
	case SortMostLiked:
		return SortMostLiked
	default:
		return SortNewest
	}
}

// Filter describes a feed query. Search matches a case-insensitive literal
// substring against the title or the artist name; Category is an exact match.
type Filter struct {
	Search     string
	Category   string
	Sort       Sort
	Offset     int
	Limit      int
	PublicOnly bool
	ArtistID   *bson.ObjectID
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked bool
	Likes int
}

// Repository defines the persistence interface for artworks.
type Repository interface {
	// Insert stores a new artwork.
	Insert(ctx context.Context, a *Artwork) error

	// InsertMany stores a batch of artworks.
	InsertMany(ctx context.Context, artworks []*Artwork) error

	// FindByID finds an artwork by ID.
	FindByID(ctx context.Context, id bson.ObjectID) (*Artwork, error)

	// Find returns artworks matching the filter.
	Find(ctx context.Context, f Filter) ([]*Artwork, error)

	// FindByIDs returns the artworks with the given IDs, keyed by ID.
	// Missing IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]*Artwork, error)

	// ApplyUpdate applies the whitelisted field update and returns the
	// resulting artwork.
	ApplyUpdate(ctx context.Context, id bson.ObjectID, upd Update) (*Artwork, error)

	// Delete removes an artwork.
	Delete(ctx context.Context, id bson.ObjectID) error

	// ToggleLike flips the like state of the given user on the artwork with
	// a conditional update keyed on current membership, so concurrent
	// duplicate toggles cannot double-count.
	ToggleLike(ctx context.Context, id, userID bson.ObjectID) (LikeResult, error)

	// DeleteAll wipes the collection. Used by the destructive seed.
	DeleteAll(ctx context.Context) error
}
