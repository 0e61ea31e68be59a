package user

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the persistence interface for users.
type Repository interface {
	// Insert stores a new user. A duplicate email yields errs.ErrDuplicateEmail.
	Insert(ctx context.Context, u *User) error

	// InsertMany stores a batch of users.
	InsertMany(ctx context.Context, users []*User) error

	// FindByID finds a user by ID.
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)

	// FindByEmail finds a user by email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByIDs returns the users with the given IDs, keyed by ID.
	// Missing IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]*User, error)

	// DeleteAll wipes the collection. Used by the destructive seed.
	DeleteAll(ctx context.Context) error
}
