package artwork

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// Delete removes an artwork owned by the caller and cascades onto every
// favorite referencing it, so no favorite dangles.
func (s *Service) Delete(ctx context.Context, callerID, artworkID bson.ObjectID) error {
	existing, err := s.artworks.FindByID(ctx, artworkID)
	if err != nil {
		return err
	}

	if !existing.IsOwnedBy(callerID) {
		return errs.ErrForbidden
	}

	if err = s.artworks.Delete(ctx, artworkID); err != nil {
		return err
	}

	if err = s.favorites.DeleteByArtworkID(ctx, artworkID); err != nil {
		return fmt.Errorf("artwork deleted but favorites cascade failed: %w", err)
	}

	s.logger.InfoContext(ctx, "artwork deleted",
		slog.String("artwork_id", artworkID.Hex()),
		slog.String("artist_id", callerID.Hex()),
	)

	return nil
}
