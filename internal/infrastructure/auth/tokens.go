package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// TokenService issues and verifies HS256 credentials bound to a user
// identifier. Tokens are verifiable without a store round-trip.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the user identifier, valid for the configured
// lifetime.
func (s *TokenService) Issue(userID bson.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded user
// identifier. Expired tokens are reported as errs.ErrTokenExpired; any other
// failure is errs.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (bson.ObjectID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return bson.ObjectID{}, errs.ErrTokenExpired
		}
		return bson.ObjectID{}, errs.ErrInvalidToken
	}

	userID, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return bson.ObjectID{}, errs.ErrInvalidToken
	}
	return userID, nil
}
