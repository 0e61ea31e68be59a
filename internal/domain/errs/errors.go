// Package errs defines the sentinel errors shared across the application.
package errs

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when input data is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail is returned when registering an email that is already taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure; it deliberately does not
	// distinguish an unknown email from a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when a request carries no usable credential
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken is returned when a bearer token fails verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a bearer token is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden is returned when the caller does not own the resource
	ErrForbidden = errors.New("forbidden")
)
