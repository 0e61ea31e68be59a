package artwork

import (
	"context"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
)

// List returns one page of the public feed. Pages are fixed at PageSize
// entries; page numbers below 1 are treated as 1.
func (s *Service) List(ctx context.Context, q ListQuery) ([]*artworkdomain.Artwork, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	artworks, err := s.artworks.Find(ctx, artworkdomain.Filter{
		Search:     q.Search,
		Category:   q.Category,
		Sort:       artworkdomain.ParseSort(q.Sort),
		Offset:     (page - 1) * PageSize,
		Limit:      PageSize,
		PublicOnly: true,
	})
	if err != nil {
		return nil, err
	}

	if err = s.attachArtists(ctx, artworks); err != nil {
		return nil, err
	}

	return artworks, nil
}

// Featured returns the most liked public artworks, capped at HighlightLimit.
func (s *Service) Featured(ctx context.Context) ([]*artworkdomain.Artwork, error) {
	return s.highlight(ctx, artworkdomain.SortMostLiked)
}

// Latest returns the newest public artworks, capped at HighlightLimit.
func (s *Service) Latest(ctx context.Context) ([]*artworkdomain.Artwork, error) {
	return s.highlight(ctx, artworkdomain.SortNewest)
}

func (s *Service) highlight(ctx context.Context, sort artworkdomain.Sort) ([]*artworkdomain.Artwork, error) {
	artworks, err := s.artworks.Find(ctx, artworkdomain.Filter{
		Sort:       sort,
		Limit:      HighlightLimit,
		PublicOnly: true,
	})
	if err != nil {
		return nil, err
	}

	if err = s.attachArtists(ctx, artworks); err != nil {
		return nil, err
	}

	return artworks, nil
}
