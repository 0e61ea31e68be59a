package artwork

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// Get returns a single artwork by ID with current artist identity attached.
func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*artworkdomain.Artwork, error) {
	a, err := s.artworks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.attachArtists(ctx, []*artworkdomain.Artwork{a}); err != nil {
		return nil, err
	}

	return a, nil
}

// ListByUser returns every artwork owned by the given user, private ones
// included, newest first. Only the owner may list their gallery.
func (s *Service) ListByUser(ctx context.Context, callerID, userID bson.ObjectID) ([]*artworkdomain.Artwork, error) {
	if callerID != userID {
		return nil, errs.ErrForbidden
	}

	return s.artworks.Find(ctx, artworkdomain.Filter{
		ArtistID: &userID,
		Sort:     artworkdomain.SortNewest,
	})
}
