// Package httphandler exposes the REST API handlers.
package httphandler

import (
	"time"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// UserResponse is the public projection of an account. The password hash and
// provider IDs never leave the server.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// ToUserResponse converts a user to its public projection.
func ToUserResponse(u *userdomain.User) UserResponse {
	return UserResponse{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
	}
}

// ArtworkResponse is the API shape of an artwork.
type ArtworkResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Medium      string    `json:"medium"`
	ImageURL    string    `json:"imageUrl"`
	Dimensions  string    `json:"dimensions"`
	Price       float64   `json:"price"`
	Visibility  string    `json:"visibility"`
	ArtistID    string    `json:"artistId"`
	ArtistName  string    `json:"artistName"`
	ArtistEmail string    `json:"artistEmail"`
	ArtistPhoto string    `json:"artistPhoto"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToArtworkResponse converts an artwork to its API shape.
func ToArtworkResponse(a *artworkdomain.Artwork) ArtworkResponse {
	likedBy := make([]string, 0, len(a.LikedBy))
	for _, id := range a.LikedBy {
		likedBy = append(likedBy, id.Hex())
	}

	return ArtworkResponse{
		ID:          a.ID.Hex(),
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Medium:      a.Medium,
		ImageURL:    a.ImageURL,
		Dimensions:  a.Dimensions,
		Price:       a.Price,
		Visibility:  string(a.Visibility),
		ArtistID:    a.ArtistID.Hex(),
		ArtistName:  a.ArtistName,
		ArtistEmail: a.ArtistEmail,
		ArtistPhoto: a.ArtistPhoto,
		Likes:       a.Likes,
		LikedBy:     likedBy,
		CreatedAt:   a.CreatedAt,
	}
}

// ToArtworkResponses converts a slice of artworks to their API shape.
func ToArtworkResponses(artworks []*artworkdomain.Artwork) []ArtworkResponse {
	result := make([]ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		result = append(result, ToArtworkResponse(a))
	}
	return result
}
