package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

const (
	// CurrentUserKey is the echo context key holding the authenticated user.
	CurrentUserKey = "current_user"

	bearerPrefix = "Bearer "
)

// Authentication failure messages returned to clients.
const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"
)

// TokenVerifier verifies a bearer credential and returns the subject user ID.
type TokenVerifier interface {
	Verify(tokenString string) (bson.ObjectID, error)
}

// UserFinder resolves a user by ID. Satisfied by user.Repository.
type UserFinder interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*userdomain.User, error)
}

// RequireAuth returns a middleware that authenticates requests with a bearer
// token. The token subject is resolved to a full user, which is stored in the
// request context. Requests without a valid token and an existing user are
// rejected with 401.
func RequireAuth(verifier TokenVerifier, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return unauthorized(c, MsgNoToken)
			}

			tokenString := strings.TrimPrefix(header, bearerPrefix)
			if tokenString == "" {
				return unauthorized(c, MsgNoToken)
			}

			userID, err := verifier.Verify(tokenString)
			if err != nil {
				return unauthorized(c, MsgTokenFailed)
			}

			// A valid token for a deleted user is still rejected.
			currentUser, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return unauthorized(c, MsgTokenFailed)
			}

			c.Set(CurrentUserKey, currentUser)
			return next(c)
		}
	}
}

// GetCurrentUser returns the authenticated user from the echo context.
func GetCurrentUser(c echo.Context) (*userdomain.User, bool) {
	u, ok := c.Get(CurrentUserKey).(*userdomain.User)
	return u, ok
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": message,
	})
}
