// Package artwork contains the artwork entity and its mutation rules.
package artwork

import (
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/artifyhq/artify-server/internal/domain/errs"
	"github.com/artifyhq/artify-server/internal/domain/user"
)

// Visibility controls whether an artwork appears in the public feed.
type Visibility string

// Supported visibility values.
const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is a known visibility value.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Artwork represents a piece of uploaded artwork metadata. The artist fields
// are stamped from the creating user and are never writable afterwards.
// LikedBy records which users currently like the piece; Likes is the display
// count, never negative, moved in lockstep with LikedBy by ToggleLike.
type Artwork struct {
	ID          bson.ObjectID
	Title       string
	Description string
	Category    string
	Medium      string
	ImageURL    string
	Dimensions  string
	Price       float64
	Visibility  Visibility
	ArtistID    bson.ObjectID
	ArtistName  string
	ArtistEmail string
	ArtistPhoto string
	Likes       int
	LikedBy     []bson.ObjectID
	CreatedAt   time.Time
}

// New creates an artwork owned by the given artist. Title, description,
// category, medium and image URL are required. Dimensions defaults to empty,
// price to 0 and visibility to public.
func New(
	title, description, category, medium, imageURL, dimensions string,
	price float64,
	visibility Visibility,
	artist *user.User,
) (*Artwork, error) {
	if title == "" || description == "" || category == "" || medium == "" || imageURL == "" {
		return nil, fmt.Errorf("%w: all required fields must be filled", errs.ErrValidation)
	}
	if visibility == "" {
		visibility = VisibilityPublic
	}
	if !visibility.Valid() {
		return nil, fmt.Errorf("%w: visibility must be public or private", errs.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", errs.ErrValidation)
	}

	return &Artwork{
		ID:          bson.NewObjectID(),
		Title:       title,
		Description: description,
		Category:    category,
		Medium:      medium,
		ImageURL:    imageURL,
		Dimensions:  dimensions,
		Price:       price,
		Visibility:  visibility,
		ArtistID:    artist.ID,
		ArtistName:  artist.Name,
		ArtistEmail: artist.Email,
		ArtistPhoto: artist.PhotoURL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// IsOwnedBy reports whether the artwork belongs to the given user.
func (a *Artwork) IsOwnedBy(userID bson.ObjectID) bool {
	return a.ArtistID == userID
}

// HasLiked reports whether the given user is in the liker set.
func (a *Artwork) HasLiked(userID bson.ObjectID) bool {
	return slices.Contains(a.LikedBy, userID)
}

// ToggleLike flips the like state for the given user and returns the
// resulting state. The count is floored at zero and kept equal to the size of
// the liker set.
func (a *Artwork) ToggleLike(userID bson.ObjectID) bool {
	if a.HasLiked(userID) {
		a.LikedBy = slices.DeleteFunc(a.LikedBy, func(id bson.ObjectID) bool {
			return id == userID
		})
		if a.Likes > 0 {
			a.Likes--
		}
		return false
	}

	a.LikedBy = append(a.LikedBy, userID)
	a.Likes++
	return true
}

// Update describes the mutable presentation fields of an artwork. Nil fields
// are left unchanged. Identity, ownership and like fields are deliberately
// absent.
type Update struct {
	Title       *string
	Description *string
	Category    *string
	Medium      *string
	ImageURL    *string
	Dimensions  *string
	Price       *float64
	Visibility  *Visibility
}

// Validate checks every supplied field.
func (u Update) Validate() error {
	for name, field := range map[string]*string{
		"title":       u.Title,
		"description": u.Description,
		"category":    u.Category,
		"medium":      u.Medium,
		"imageUrl":    u.ImageURL,
	} {
		if field != nil && *field == "" {
			return fmt.Errorf("%w: %s cannot be empty", errs.ErrValidation, name)
		}
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", errs.ErrValidation)
	}
	if u.Visibility != nil && !u.Visibility.Valid() {
		return fmt.Errorf("%w: visibility must be public or private", errs.ErrValidation)
	}
	return nil
}

// Empty reports whether the update carries no fields at all.
func (u Update) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Medium == nil && u.ImageURL == nil && u.Dimensions == nil &&
		u.Price == nil && u.Visibility == nil
}

// Apply merges the update onto the artwork. The update must already be
// validated.
func (a *Artwork) Apply(u Update) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.Medium != nil {
		a.Medium = *u.Medium
	}
	if u.ImageURL != nil {
		a.ImageURL = *u.ImageURL
	}
	if u.Dimensions != nil {
		a.Dimensions = *u.Dimensions
	}
	if u.Price != nil {
		a.Price = *u.Price
	}
	if u.Visibility != nil {
		a.Visibility = *u.Visibility
	}
}
