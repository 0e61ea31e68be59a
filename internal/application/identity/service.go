// Package identity implements registration, login and mock social login.
package identity

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues a bearer credential for a user.
type TokenIssuer interface {
	Issue(userID bson.ObjectID) (string, error)
}

// Service handles identity operations.
type Service struct {
	users  userdomain.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *slog.Logger
}

// Option configures Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new identity service.
func NewService(users userdomain.Repository, hasher PasswordHasher, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
