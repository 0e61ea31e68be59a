package artwork

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
)

// ToggleLike flips the caller's like on an artwork and returns the resulting
// state. The repository performs the flip as a conditional update, so two
// concurrent toggles from the same user never double-count.
func (s *Service) ToggleLike(ctx context.Context, artworkID, userID bson.ObjectID) (artworkdomain.LikeResult, error) {
	return s.artworks.ToggleLike(ctx, artworkID, userID)
}
