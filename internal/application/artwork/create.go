package artwork

import (
	"context"
	"log/slog"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
)

// Create uploads an artwork stamped with the authenticated artist's identity.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*artworkdomain.Artwork, error) {
	a, err := artworkdomain.New(
		cmd.Title,
		cmd.Description,
		cmd.Category,
		cmd.Medium,
		cmd.ImageURL,
		cmd.Dimensions,
		cmd.Price,
		artworkdomain.Visibility(cmd.Visibility),
		cmd.Artist,
	)
	if err != nil {
		return nil, err
	}

	if err = s.artworks.Insert(ctx, a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "artwork created",
		slog.String("artwork_id", a.ID.Hex()),
		slog.String("artist_id", a.ArtistID.Hex()),
		slog.String("title", a.Title),
	)

	return a, nil
}
