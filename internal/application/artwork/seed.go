package artwork

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	favoritedomain "github.com/artifyhq/artify-server/internal/domain/favorite"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// SeedPassword is the password shared by every seeded demo account.
const SeedPassword = "Password123"

type seedUser struct {
	name     string
	email    string
	photoURL string
}

type seedArtwork struct {
	title       string
	description string
	category    string
	medium      string
	imageURL    string
	price       float64
	artist      int // index into the seeded users
	likes       int
	likedBy     []int
}

var seedUsers = []seedUser{
	{
		name:     "Demo User",
		email:    "demo@artify.com",
		photoURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
	},
	{
		name:     "Sarah Johnson",
		email:    "sarah@artify.com",
		photoURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
	},
	{
		name:     "Mike Chen",
		email:    "mike@artify.com",
		photoURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
	},
}

var seedArtworks = []seedArtwork{
	{
		title:       "Nature's Whisper",
		description: "A beautiful charcoal drawing capturing the essence of nature with intricate details and textures that bring the forest to life.",
		category:    "Drawing",
		medium:      "Charcoal on Paper",
		imageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=1200&h=800&fit=crop",
		price:       620,
		artist:      0,
		likes:       29,
		likedBy:     []int{1, 2},
	},
	{
		title:       "Abstract Emotions",
		description: "An expressive mixed media piece exploring emotional depth through vibrant colors and dynamic brushstrokes.",
		category:    "Mixed Media",
		medium:      "Acrylic & Ink on Canvas",
		imageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=1200&h=800&fit=crop",
		price:       890,
		artist:      1,
		likes:       51,
		likedBy:     []int{0, 2},
	},
	{
		title:       "Urban Dreams",
		description: "A digital artwork depicting the dreams of city life with futuristic architecture and neon-lit streets.",
		category:    "Digital Art",
		medium:      "Digital Illustration",
		imageURL:    "https://images.unsplash.com/photo-1574169208507-84376144848b?w=1200&h=800&fit=crop",
		price:       450,
		artist:      2,
		likes:       42,
		likedBy:     []int{0, 1},
	},
	{
		title:       "Ocean Serenity",
		description: "A stunning oil painting capturing the peaceful moments of ocean waves at sunset.",
		category:    "Painting",
		medium:      "Oil on Canvas",
		imageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1200&h=800&fit=crop",
		price:       1200,
		artist:      0,
		likes:       67,
		likedBy:     []int{1, 2},
	},
	{
		title:       "Mountain Majesty",
		description: "A breathtaking landscape photograph of majestic mountains during golden hour.",
		category:    "Photography",
		medium:      "Digital Photography",
		imageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1200&h=800&fit=crop",
		price:       350,
		artist:      1,
		likes:       88,
		likedBy:     []int{0, 2},
	},
}

// seedFavorites pairs a user index with an artwork index.
var seedFavorites = [][2]int{
	{0, 1},
	{0, 2},
	{1, 0},
}

// Seed wipes the users, artworks and favorites collections and re-inserts the
// demo catalog. Destructive and unauthenticated; meant for demo environments.
func (s *Service) Seed(ctx context.Context) (SeedResult, error) {
	if err := s.artworks.DeleteAll(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("failed to wipe artworks: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("failed to wipe users: %w", err)
	}
	if err := s.favorites.DeleteAll(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("failed to wipe favorites: %w", err)
	}

	hash, err := s.hasher.Hash(SeedPassword)
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]*userdomain.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		u, newErr := userdomain.New(su.name, su.email, hash, su.photoURL)
		if newErr != nil {
			return SeedResult{}, newErr
		}
		users = append(users, u)
	}
	if err = s.users.InsertMany(ctx, users); err != nil {
		return SeedResult{}, err
	}

	// Stagger creation times so newest-first ordering is deterministic:
	// later catalog entries are newer.
	base := time.Now().UTC().Add(-time.Duration(len(seedArtworks)) * time.Second)

	artworks := make([]*artworkdomain.Artwork, 0, len(seedArtworks))
	for i, sa := range seedArtworks {
		artist := users[sa.artist]
		a, newErr := artworkdomain.New(
			sa.title, sa.description, sa.category, sa.medium, sa.imageURL,
			"", sa.price, artworkdomain.VisibilityPublic, artist,
		)
		if newErr != nil {
			return SeedResult{}, newErr
		}

		// Seeded like counts are display values from the demo catalog and
		// exceed the recorded liker sets on purpose.
		a.Likes = sa.likes
		a.LikedBy = make([]bson.ObjectID, 0, len(sa.likedBy))
		for _, idx := range sa.likedBy {
			a.LikedBy = append(a.LikedBy, users[idx].ID)
		}
		a.CreatedAt = base.Add(time.Duration(i) * time.Second)

		artworks = append(artworks, a)
	}
	if err = s.artworks.InsertMany(ctx, artworks); err != nil {
		return SeedResult{}, err
	}

	favorites := make([]*favoritedomain.Favorite, 0, len(seedFavorites))
	for _, pair := range seedFavorites {
		favorites = append(favorites, favoritedomain.New(users[pair[0]].ID, artworks[pair[1]].ID))
	}
	if err = s.favorites.InsertMany(ctx, favorites); err != nil {
		return SeedResult{}, err
	}

	s.logger.InfoContext(ctx, "database seeded",
		slog.Int("users", len(users)),
		slog.Int("artworks", len(artworks)),
		slog.Int("favorites", len(favorites)),
	)

	return SeedResult{
		Users:     users,
		Artworks:  len(artworks),
		Favorites: len(favorites),
	}, nil
}
