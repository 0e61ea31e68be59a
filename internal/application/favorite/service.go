// Package favorite implements saving artworks to a personal collection.
package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	favoritedomain "github.com/artifyhq/artify-server/internal/domain/favorite"
)

// Service handles favorite operations.
type Service struct {
	favorites favoritedomain.Repository
	artworks  artworkdomain.Repository
	logger    *slog.Logger
}

// Option configures Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new favorite service.
func NewService(favorites favoritedomain.Repository, artworks artworkdomain.Repository, opts ...Option) *Service {
	s := &Service{
		favorites: favorites,
		artworks:  artworks,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// List returns the artworks the user has favorited, newest favorite first.
// Only the owner of the collection may read it. Favorites whose artwork has
// since been deleted are silently dropped.
func (s *Service) List(ctx context.Context, callerID, userID bson.ObjectID) ([]*artworkdomain.Artwork, error) {
	if callerID != userID {
		return nil, errs.ErrForbidden
	}

	favorites, err := s.favorites.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ArtworkID)
	}

	artworks, err := s.artworks.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*artworkdomain.Artwork, 0, len(favorites))
	for _, f := range favorites {
		if a, ok := artworks[f.ArtworkID]; ok {
			result = append(result, a)
		}
	}

	return result, nil
}

// Check reports whether the user has favorited the artwork. The artwork's
// existence is not checked; an unknown ID simply reads as not favorited.
func (s *Service) Check(ctx context.Context, userID, artworkID bson.ObjectID) (bool, error) {
	return s.favorites.Exists(ctx, userID, artworkID)
}

// Add favorites an artwork for the user. The artwork must exist. Adding an
// existing favorite reports created=false and is not an error.
func (s *Service) Add(ctx context.Context, userID, artworkID bson.ObjectID) (bool, error) {
	if _, err := s.artworks.FindByID(ctx, artworkID); err != nil {
		return false, err
	}

	exists, err := s.favorites.Exists(ctx, userID, artworkID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	// The unique (user, artwork) index absorbs a concurrent duplicate add.
	if err = s.favorites.Insert(ctx, favoritedomain.New(userID, artworkID)); err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID.Hex()),
		slog.String("artwork_id", artworkID.Hex()),
	)

	return true, nil
}

// Remove deletes the user's favorite for the artwork.
func (s *Service) Remove(ctx context.Context, userID, artworkID bson.ObjectID) error {
	if err := s.favorites.Delete(ctx, userID, artworkID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
