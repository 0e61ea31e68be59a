package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	favoritedomain "github.com/artifyhq/artify-server/internal/domain/favorite"
	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// FavoriteRepository implements favorite.Repository on a MongoDB collection.
type FavoriteRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// FavoriteRepoOption configures FavoriteRepository.
type FavoriteRepoOption func(*FavoriteRepository)

// WithFavoriteRepoLogger sets the logger for the favorite repository.
func WithFavoriteRepoLogger(logger *slog.Logger) FavoriteRepoOption {
	return func(r *FavoriteRepository) {
		r.logger = logger
	}
}

// NewFavoriteRepository creates a new MongoDB favorite repository.
func NewFavoriteRepository(collection *mongo.Collection, opts ...FavoriteRepoOption) *FavoriteRepository {
	r := &FavoriteRepository{
		collection: collection,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Insert stores a favorite. A duplicate-key conflict on the (user, artwork)
// pair means the favorite already exists and is treated as success.
func (r *FavoriteRepository) Insert(ctx context.Context, f *favoritedomain.Favorite) error {
	_, err := r.collection.InsertOne(ctx, favoriteToDocument(f))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		r.logger.ErrorContext(ctx, "failed to insert favorite",
			slog.String("user_id", f.UserID.Hex()),
			slog.String("artwork_id", f.ArtworkID.Hex()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "favorite")
	}
	return nil
}

// InsertMany stores a batch of favorites.
func (r *FavoriteRepository) InsertMany(ctx context.Context, favorites []*favoritedomain.Favorite) error {
	docs := make([]any, 0, len(favorites))
	for _, f := range favorites {
		docs = append(docs, favoriteToDocument(f))
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return HandleMongoError(err, "favorites")
}

// FindByUserID returns the user's favorites, newest first.
func (r *FavoriteRepository) FindByUserID(
	ctx context.Context,
	userID bson.ObjectID,
) ([]*favoritedomain.Favorite, error) {
	opts := FindWithSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, HandleMongoError(err, "favorites")
	}
	defer cursor.Close(ctx)

	results := make([]*favoritedomain.Favorite, 0)
	for cursor.Next(ctx) {
		var doc favoriteDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			continue
		}
		results = append(results, documentToFavorite(&doc))
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "favorites")
	}

	return results, nil
}

// Exists reports whether the user has favorited the artwork.
func (r *FavoriteRepository) Exists(
	ctx context.Context,
	userID, artworkID bson.ObjectID,
) (bool, error) {
	count, err := r.collection.CountDocuments(ctx,
		bson.M{"user_id": userID, "artwork_id": artworkID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, HandleMongoError(err, "favorite")
	}

	return count > 0, nil
}

// Delete removes the user's favorite for the artwork.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, artworkID bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "artwork_id": artworkID})
	if err != nil {
		return HandleMongoError(err, "favorite")
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// DeleteByArtworkID removes every favorite referencing the artwork. Used when
// an artwork is deleted so no favorite dangles.
func (r *FavoriteRepository) DeleteByArtworkID(ctx context.Context, artworkID bson.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"artwork_id": artworkID})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		r.logger.ErrorContext(ctx, "failed to cascade delete favorites",
			slog.String("artwork_id", artworkID.Hex()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "favorites")
	}
	return nil
}

// DeleteAll wipes the collection.
func (r *FavoriteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return HandleMongoError(err, "favorites")
}

// favoriteDocument is the MongoDB representation of a favorite.
type favoriteDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	UserID    bson.ObjectID `bson:"user_id"`
	ArtworkID bson.ObjectID `bson:"artwork_id"`
	CreatedAt time.Time     `bson:"created_at"`
}

func favoriteToDocument(f *favoritedomain.Favorite) favoriteDocument {
	return favoriteDocument{
		ID:        f.ID,
		UserID:    f.UserID,
		ArtworkID: f.ArtworkID,
		CreatedAt: f.CreatedAt,
	}
}

func documentToFavorite(doc *favoriteDocument) *favoritedomain.Favorite {
	return &favoritedomain.Favorite{
		ID:        doc.ID,
		UserID:    doc.UserID,
		ArtworkID: doc.ArtworkID,
		CreatedAt: doc.CreatedAt,
	}
}
