// Package user contains the user entity.
package user

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// Providers with a dedicated identifier field on the user document.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// User represents a registered account. PasswordHash holds a bcrypt hash and
// is empty for accounts created through social login.
type User struct {
	ID           bson.ObjectID
	Name         string
	Email        string
	PasswordHash string
	PhotoURL     string
	GoogleID     string
	GitHubID     string
	CreatedAt    time.Time
}

// New creates a user with a fresh identifier. The password hash may be empty
// (social accounts have no password).
func New(name, email, passwordHash, photoURL string) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrValidation)
	}

	return &User{
		ID:           bson.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		PhotoURL:     photoURL,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// SetProviderID records an external provider identifier. Providers without a
// dedicated document field are ignored, matching the persisted schema.
func (u *User) SetProviderID(provider, id string) {
	switch provider {
	case ProviderGoogle:
		u.GoogleID = id
	case ProviderGitHub:
		u.GitHubID = id
	}
}

// HasPassword reports whether the account supports password login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
