package httphandler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artifyhq/artify-server/internal/application/identity"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	"github.com/artifyhq/artify-server/internal/infrastructure/httpserver"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL"`
}

// LoginRequest is the payload for an email/password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SocialLoginRequest is the payload for the mock social login.
type SocialLoginRequest struct {
	Provider string `json:"provider"`
}

// IdentityService is the application service the auth handler depends on.
// Declared on the consumer side per project guidelines.
type IdentityService interface {
	Register(ctx context.Context, cmd identity.RegisterCommand) (identity.Result, error)
	Login(ctx context.Context, cmd identity.LoginCommand) (identity.Result, error)
	SocialLogin(ctx context.Context, cmd identity.SocialLoginCommand) (identity.Result, error)
}

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	service IdentityService
}

func NewAuthHandler(service IdentityService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers the auth endpoints. All of them are public.
func (h *AuthHandler) RegisterRoutes(r *httpserver.Router) {
	g := r.Public().Group("/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/mock-social", h.SocialLogin)
}

// Register creates an account and returns it with a fresh token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Name, email, and password are required")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Name, email, and password are required")
	}
	if len(req.Password) < identity.MinPasswordLength {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Password must be at least 6 characters")
	}

	result, err := h.service.Register(c.Request().Context(), identity.RegisterCommand{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) || errors.Is(err, errs.ErrValidation) {
			return httpserver.RespondError(c, err)
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Server error during registration")
	}

	return httpserver.RespondCreated(c, httpserver.Envelope{
		"user":  ToUserResponse(result.User),
		"token": result.Token,
	})
}

// Login authenticates an account and returns it with a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Email and password are required")
	}

	if req.Email == "" || req.Password == "" {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Email and password are required")
	}

	result, err := h.service.Login(c.Request().Context(), identity.LoginCommand{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) || errors.Is(err, errs.ErrValidation) {
			return httpserver.RespondError(c, err)
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Server error during login")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"user":  ToUserResponse(result.User),
		"token": result.Token,
	})
}

// SocialLogin creates a throwaway account for the named provider and returns
// it with a fresh token.
func (h *AuthHandler) SocialLogin(c echo.Context) error {
	var req SocialLoginRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Provider is required")
	}

	if req.Provider == "" {
		return httpserver.RespondFail(c, http.StatusBadRequest, "Provider is required")
	}

	result, err := h.service.SocialLogin(c.Request().Context(), identity.SocialLoginCommand{
		Provider: strings.ToLower(strings.TrimSpace(req.Provider)),
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return httpserver.RespondError(c, err)
		}
		return httpserver.RespondFail(c, http.StatusInternalServerError, "Social login failed")
	}

	return httpserver.RespondOK(c, httpserver.Envelope{
		"user":  ToUserResponse(result.User),
		"token": result.Token,
	})
}
