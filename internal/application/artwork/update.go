package artwork

import (
	"context"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// Update applies the whitelisted field changes to an artwork owned by the
// caller. Identity, ownership and like fields can never be written through
// this path.
func (s *Service) Update(ctx context.Context, cmd UpdateCommand) (*artworkdomain.Artwork, error) {
	if err := cmd.Changes.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.artworks.FindByID(ctx, cmd.ArtworkID)
	if err != nil {
		return nil, err
	}

	if !existing.IsOwnedBy(cmd.CallerID) {
		return nil, errs.ErrForbidden
	}

	if cmd.Changes.Empty() {
		return existing, nil
	}

	return s.artworks.ApplyUpdate(ctx, cmd.ArtworkID, cmd.Changes)
}
