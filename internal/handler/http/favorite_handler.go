package httphandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	"github.com/artifyhq/artify-server/internal/infrastructure/httpserver"
	"github.com/artifyhq/artify-server/internal/middleware"
)

// AddFavoriteRequest is the payload for bookmarking an artwork.
type AddFavoriteRequest struct {
	ArtworkID string `json:"artworkId"`
}

// FavoriteService is the application service the favorites handler depends
// on. Declared on the consumer side per project guidelines.
type FavoriteService interface {
	List(ctx context.Context, callerID, userID bson.ObjectID) ([]*artworkdomain.Artwork, error)
	Check(ctx context.Context, userID, artworkID bson.ObjectID) (bool, error)
	Add(ctx context.Context, userID, artworkID bson.ObjectID) (bool, error)
	Remove(ctx context.Context, userID, artworkID bson.ObjectID) error
}

// FavoriteHandler serves the /favorites endpoints. All of them require a
// token.
type FavoriteHandler struct {
	service FavoriteService
}

func NewFavoriteHandler(service FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// RegisterRoutes registers the favorites endpoints. The static /check
// segment takes precedence over :userId in echo's router.
func (h *FavoriteHandler) RegisterRoutes(r *httpserver.Router) {
	g := r.Auth().Group("/favorites")
	g.GET("/:userId", h.List)
	g.GET("/check/:artworkId", h.Check)
	g.POST("", h.Add)
	g.DELETE("/:artworkId", h.Remove)
}

// List serves the caller's favorited artworks, newest bookmark first.
func (h *FavoriteHandler) List(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	userID, err := bson.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusForbidden, "Access denied")
	}

	artworks, err := h.service.List(c.Request().Context(), current.ID, userID)
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return httpserver.RespondFail(c, http.StatusForbidden, "Access denied")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error fetching favorites")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"favorites": ToArtworkResponses(artworks),
	})
}

// Check reports whether the caller has favorited the artwork. An unknown or
// malformed ID is simply not favorited.
func (h *FavoriteHandler) Check(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	artworkID, err := bson.ObjectIDFromHex(c.Param("artworkId"))
	if err != nil {
		return httpserver.RespondOK(c, httpserver.Envelope{"isFavorited": false})
	}

	favorited, err := h.service.Check(c.Request().Context(), current.ID, artworkID)
	if err != nil {
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error checking favorite")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{"isFavorited": favorited})
}

// Add bookmarks an artwork for the caller. Repeating the call is harmless.
func (h *FavoriteHandler) Add(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Artwork ID is required")
	}
	if req.ArtworkID == "" {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Artwork ID is required")
	}

	artworkID, err := bson.ObjectIDFromHex(req.ArtworkID)
	if err != nil {
		return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
	}

	created, err := h.service.Add(c.Request().Context(), current.ID, artworkID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error adding favorite")
	}

	if !created {
		return httpserver.RespondOK(c, httpserver.Envelope{"message": "Already in favorites"})
	}
	return httpserver.RespondCreated(c, httpserver.Envelope{"message": "Added to favorites!"})
}

// Remove deletes the caller's bookmark for the artwork.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	artworkID, err := bson.ObjectIDFromHex(c.Param("artworkId"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusNotFound, "Favorite not found")
	}

	if err = h.service.Remove(c.Request().Context(), current.ID, artworkID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return httpserver.RespondFail(c, http.StatusNotFound, "Favorite not found")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error removing favorite")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{"message": "Removed from favorites"})
}
