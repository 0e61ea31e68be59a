package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/artifyhq/artify-server/internal/domain/errs"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// UserRepository implements user.Repository on a MongoDB collection.
type UserRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// UserRepoOption configures UserRepository.
type UserRepoOption func(*UserRepository)

// WithUserRepoLogger sets the logger for the user repository.
func WithUserRepoLogger(logger *slog.Logger) UserRepoOption {
	return func(r *UserRepository) {
		r.logger = logger
	}
}

// NewUserRepository creates a new MongoDB user repository.
func NewUserRepository(collection *mongo.Collection, opts ...UserRepoOption) *UserRepository {
	r := &UserRepository{
		collection: collection,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Insert stores a new user. A duplicate email yields errs.ErrDuplicateEmail.
func (r *UserRepository) Insert(ctx context.Context, u *userdomain.User) error {
	_, err := r.collection.InsertOne(ctx, userToDocument(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrDuplicateEmail
		}
		r.logger.ErrorContext(ctx, "failed to insert user",
			slog.String("email", u.Email),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "user")
	}
	return nil
}

// InsertMany stores a batch of users.
func (r *UserRepository) InsertMany(ctx context.Context, users []*userdomain.User) error {
	docs := make([]any, 0, len(users))
	for _, u := range users {
		docs = append(docs, userToDocument(u))
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return HandleMongoError(err, "users")
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*userdomain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.ErrorContext(ctx, "failed to find user by ID",
				slog.String("user_id", id.Hex()),
				slog.String("error", err.Error()),
			)
		}
		return nil, HandleMongoError(err, "user")
	}

	return documentToUser(&doc), nil
}

// FindByEmail finds a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		return nil, HandleMongoError(err, "user")
	}

	return documentToUser(&doc), nil
}

// FindByIDs returns the users with the given IDs, keyed by ID.
func (r *UserRepository) FindByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) (map[bson.ObjectID]*userdomain.User, error) {
	result := make(map[bson.ObjectID]*userdomain.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, HandleMongoError(err, "users")
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			continue
		}
		u := documentToUser(&doc)
		result[u.ID] = u
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "users")
	}

	return result, nil
}

// DeleteAll wipes the collection.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return HandleMongoError(err, "users")
}

// userDocument is the MongoDB representation of a user.
type userDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	PhotoURL  string        `bson:"photo_url"`
	GoogleID  string        `bson:"google_id,omitempty"`
	GitHubID  string        `bson:"github_id,omitempty"`
	CreatedAt time.Time     `bson:"created_at"`
}

func userToDocument(u *userdomain.User) userDocument {
	return userDocument{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		PhotoURL:  u.PhotoURL,
		GoogleID:  u.GoogleID,
		GitHubID:  u.GitHubID,
		CreatedAt: u.CreatedAt,
	}
}

func documentToUser(doc *userDocument) *userdomain.User {
	return &userdomain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		PhotoURL:     doc.PhotoURL,
		GoogleID:     doc.GoogleID,
		GitHubID:     doc.GitHubID,
		CreatedAt:    doc.CreatedAt,
	}
}
