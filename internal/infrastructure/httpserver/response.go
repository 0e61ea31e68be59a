// Package httpserver provides HTTP server infrastructure components.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// Envelope is the flat JSON payload shape used by every endpoint. Success
// responses carry `"success": true` plus named fields at the top level;
// failure responses carry `"success": false` and a `message`.
type Envelope map[string]any

// RespondOK sends a 200 OK response with the given fields.
func RespondOK(c echo.Context, fields Envelope) error {
	return respond(c, http.StatusOK, fields)
}

// RespondCreated sends a 201 Created response with the given fields.
func RespondCreated(c echo.Context, fields Envelope) error {
	return respond(c, http.StatusCreated, fields)
}

func respond(c echo.Context, code int, fields Envelope) error {
	body := Envelope{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(code, body)
}

// RespondFail sends a failure response with an explicit status and message.
func RespondFail(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{
		"success": false,
		"message": message,
	})
}

// RespondError maps a domain error to a failure response with a default
// message. Handlers that need endpoint-specific wording call RespondFail
// directly.
func RespondError(c echo.Context, err error) error {
	code, message := mapError(err)
	return RespondFail(c, code, message)
}

// mapError maps domain errors to HTTP status codes and default messages.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Resource not found"

	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid input data"

	case errors.Is(err, errs.ErrDuplicateEmail):
		return http.StatusBadRequest, "User already exists with this email"

	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"

	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "Not authorized, no token"

	case errors.Is(err, errs.ErrInvalidToken), errors.Is(err, errs.ErrTokenExpired):
		return http.StatusUnauthorized, "Not authorized, token failed"

	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Access denied"

	default:
		return http.StatusInternalServerError, "Server error"
	}
}
