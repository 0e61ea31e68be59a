package httphandler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	artworkapp "github.com/artifyhq/artify-server/internal/application/artwork"
	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	"github.com/artifyhq/artify-server/internal/infrastructure/httpserver"
	"github.com/artifyhq/artify-server/internal/middleware"
)

// CreateArtworkRequest is the payload for uploading an artwork.
type CreateArtworkRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Medium      string  `json:"medium"`
	ImageURL    string  `json:"imageUrl"`
	Dimensions  string  `json:"dimensions"`
	Price       float64 `json:"price"`
	Visibility  string  `json:"visibility"`
}

// UpdateArtworkRequest carries a partial edit. Absent fields are left
// untouched; ownership and like fields are not editable through this payload.
type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Medium      *string  `json:"medium"`
	ImageURL    *string  `json:"imageUrl"`
	Dimensions  *string  `json:"dimensions"`
	Price       *float64 `json:"price"`
	Visibility  *string  `json:"visibility"`
}

func (r UpdateArtworkRequest) toUpdate() artworkdomain.Update {
	u := artworkdomain.Update{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Medium:      r.Medium,
		ImageURL:    r.ImageURL,
		Dimensions:  r.Dimensions,
		Price:       r.Price,
	}
	if r.Visibility != nil {
		v := artworkdomain.Visibility(*r.Visibility)
		u.Visibility = &v
	}
	return u
}

// ArtworkService is the application service the artwork handler depends on.
// Declared on the consumer side per project guidelines.
type ArtworkService interface {
	List(ctx context.Context, q artworkapp.ListQuery) ([]*artworkdomain.Artwork, error)
	Featured(ctx context.Context) ([]*artworkdomain.Artwork, error)
	Latest(ctx context.Context) ([]*artworkdomain.Artwork, error)
	Get(ctx context.Context, id bson.ObjectID) (*artworkdomain.Artwork, error)
	ListByUser(ctx context.Context, callerID, userID bson.ObjectID) ([]*artworkdomain.Artwork, error)
	Create(ctx context.Context, cmd artworkapp.CreateCommand) (*artworkdomain.Artwork, error)
	Update(ctx context.Context, cmd artworkapp.UpdateCommand) (*artworkdomain.Artwork, error)
	Delete(ctx context.Context, callerID, artworkID bson.ObjectID) error
	ToggleLike(ctx context.Context, artworkID, userID bson.ObjectID) (artworkdomain.LikeResult, error)
	Seed(ctx context.Context) (artworkapp.SeedResult, error)
}

// ArtworkHandler serves the /artworks endpoints.
type ArtworkHandler struct {
	service ArtworkService
}

func NewArtworkHandler(service ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// RegisterRoutes registers the artwork endpoints. The feed, highlight and
// detail routes are public; everything that writes or exposes private pieces
// requires a token. Static segments are registered alongside the :id routes
// and take precedence in echo's router.
func (h *ArtworkHandler) RegisterRoutes(r *httpserver.Router) {
	pub := r.Public().Group("/artworks")
	pub.GET("", h.List)
	pub.GET("/featured", h.Featured)
	pub.GET("/latest", h.Latest)
	pub.GET("/:id", h.Get)
	pub.POST("/seed", h.Seed)

	auth := r.Auth().Group("/artworks")
	auth.GET("/user/:userId", h.ListByUser)
	auth.POST("", h.Create)
	auth.PUT("/:id", h.Update)
	auth.DELETE("/:id", h.Delete)
	auth.POST("/:id/like", h.ToggleLike)
}

// List serves the public feed with search, category filter, sort and
// pagination.
func (h *ArtworkHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	artworks, err := h.service.List(c.Request().Context(), artworkapp.ListQuery{
		Page:     page,
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error fetching artworks")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"artworks": ToArtworkResponses(artworks),
	})
}

// Featured serves the most liked public artworks.
func (h *ArtworkHandler) Featured(c echo.Context) error {
	artworks, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error fetching artworks")
	}
	return httpserver.RespondOK(c, httpserver.Envelope{
		"artworks": ToArtworkResponses(artworks),
	})
}

// Latest serves the newest public artworks.
func (h *ArtworkHandler) Latest(c echo.Context) error {
	artworks, err := h.service.Latest(c.Request().Context())
	if err != nil {
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error fetching artworks")
	}
	return httpserver.RespondOK(c, httpserver.Envelope{
		"artworks": ToArtworkResponses(artworks),
	})
}

// Get serves a single artwork by ID.
func (h *ArtworkHandler) Get(c echo.Context) error {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
	}

	artwork, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error fetching artwork")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"artwork": ToArtworkResponse(artwork),
	})
}

// ListByUser serves a user's own gallery, private pieces included. Only the
// owner may view it.
func (h *ArtworkHandler) ListByUser(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	userID, err := bson.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusForbidden, "Access denied")
	}

	artworks, err := h.service.ListByUser(c.Request().Context(), current.ID, userID)
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return httpserver.RespondFail(c, http.StatusForbidden, "Access denied")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error fetching artworks")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"artworks": ToArtworkResponses(artworks),
	})
}

// Create uploads a new artwork stamped with the caller's identity.
func (h *ArtworkHandler) Create(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	var req CreateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondFail(c, http.StatusBadRequest, "All required fields must be filled")
	}

	artwork, err := h.service.Create(c.Request().Context(), artworkapp.CreateCommand{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Medium:      req.Medium,
		ImageURL:    req.ImageURL,
		Dimensions:  req.Dimensions,
		Price:       req.Price,
		Visibility:  req.Visibility,
		Artist:      current,
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return httpserver.RespondFail(c, http.StatusBadRequest, "All required fields must be filled")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error creating artwork")
	}

	return httpserver.RespondCreated(c, httpserver.Envelope{
		"artwork": ToArtworkResponse(artwork),
		"message": "Artwork created successfully!",
	})
}

// Update edits an artwork owned by the caller.
func (h *ArtworkHandler) Update(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
	}

	var req UpdateArtworkRequest
	if err = c.Bind(&req); err != nil {
		return httpserver.RespondError(c, errs.ErrValidation)
	}

	artwork, err := h.service.Update(c.Request().Context(), artworkapp.UpdateCommand{
		ArtworkID: id,
		CallerID:  current.ID,
		Changes:   req.toUpdate(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
		case errors.Is(err, errs.ErrForbidden):
			return httpserver.RespondFail(c, http.StatusForbidden, "Access denied")
		case errors.Is(err, errs.ErrValidation):
			return httpserver.RespondError(c, err)
		default:
			return httpserver.RespondFail(c, http.StatusInternalServerError, "Error updating artwork")
		}
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"artwork": ToArtworkResponse(artwork),
		"message": "Artwork updated successfully!",
	})
}

// Delete removes an artwork owned by the caller along with every favorite
// pointing at it.
func (h *ArtworkHandler) Delete(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
	}

	if err = h.service.Delete(c.Request().Context(), current.ID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
		case errors.Is(err, errs.ErrForbidden):
			return httpserver.RespondFail(c, http.StatusForbidden, "Access denied")
		default:
			return httpserver.RespondFail(c, http.StatusInternalServerError, "Error deleting artwork")
		}
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"message": "Artwork deleted successfully!",
	})
}

// ToggleLike flips the caller's like on an artwork and reports the new state.
func (h *ArtworkHandler) ToggleLike(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return httpserver.RespondFail(c, http.StatusUnauthorized, middleware.MsgNoToken)
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
	}

	result, err := h.service.ToggleLike(c.Request().Context(), id, current.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return httpserver.RespondFail(c, http.StatusNotFound, "Artwork not found")
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error updating like")
	}

	message := "Artwork unliked"
	if result.Liked {
		message = "Artwork liked!"
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"isLiked":    result.Liked,
		"likesCount": result.Likes,
		"message":    message,
	})
}

// Seed wipes the database and loads the demo catalog. Destructive, meant for
// demo environments only.
func (h *ArtworkHandler) Seed(c echo.Context) error {
	result, err := h.service.Seed(c.Request().Context())
	if err != nil {
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Error seeding database")
	}

	users := make([]httpserver.Envelope, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, httpserver.Envelope{
			"id":       u.ID.Hex(),
			"email":    u.Email,
			"password": artworkapp.SeedPassword,
		})
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"message":   "Database seeded successfully!",
		"users":     users,
		"artworks":  result.Artworks,
		"favorites": result.Favorites,
	})
}
