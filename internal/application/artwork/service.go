// Package artwork implements the public feed, gallery management and like
// operations.
package artwork

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	favoritedomain "github.com/artifyhq/artify-server/internal/domain/favorite"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

const (
	// PageSize is the fixed public feed page size.
	PageSize = 12

	// HighlightLimit caps the featured and latest shelves.
	HighlightLimit = 6
)

// PasswordHasher hashes passwords. Needed by the seed to create the demo
// accounts.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Service handles artwork operations.
type Service struct {
	artworks  artworkdomain.Repository
	users     userdomain.Repository
	favorites favoritedomain.Repository
	hasher    PasswordHasher
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

// NewService creates a new artwork service.
func NewService(
	artworks artworkdomain.Repository,
	users userdomain.Repository,
	favorites favoritedomain.Repository,
	hasher PasswordHasher,
	opts ...Option,
) *Service {
	s := &Service{
		artworks:  artworks,
		users:     users,
		favorites: favorites,
		hasher:    hasher,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// attachArtists refreshes the denormalized artist fields from the current
// user records, so account changes show up-to-date in feeds. Artworks whose
// artist is gone keep the stamped values.
func (s *Service) attachArtists(ctx context.Context, artworks []*artworkdomain.Artwork) error {
	if len(artworks) == 0 {
		return nil
	}

	seen := make(map[bson.ObjectID]struct{}, len(artworks))
	ids := make([]bson.ObjectID, 0, len(artworks))
	for _, a := range artworks {
		if _, ok := seen[a.ArtistID]; ok {
			continue
		}
		seen[a.ArtistID] = struct{}{}
		ids = append(ids, a.ArtistID)
	}

	artists, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, a := range artworks {
		artist, ok := artists[a.ArtistID]
		if !ok {
			continue
		}
		a.ArtistName = artist.Name
		a.ArtistEmail = artist.Email
		a.ArtistPhoto = artist.PhotoURL
	}

	return nil
}
