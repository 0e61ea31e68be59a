package artwork

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// ListQuery describes a public feed request.
type ListQuery struct {
	Page     int
	Search   string
	Category string
	Sort     string
}

// CreateCommand carries the data for uploading an artwork. Artist is the
// authenticated user; the artwork is stamped with their identity.
type CreateCommand struct {
	Title       string
	Description string
	Category    string
	Medium      string
	ImageURL    string
	Dimensions  string
	Price       float64
	Visibility  string
	Artist      *userdomain.User
}

// UpdateCommand carries a whitelisted field update for an artwork owned by
// the caller.
type UpdateCommand struct {
	ArtworkID bson.ObjectID
	CallerID  bson.ObjectID
	Changes   artworkdomain.Update
}

// SeedResult summarizes what the destructive seed created.
type SeedResult struct {
	Users     []*userdomain.User
	Artworks  int
	Favorites int
}
