package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
)

// toggleLikeAttempts bounds the retry loop when concurrent toggles race.
const toggleLikeAttempts = 3

// ArtworkRepository implements artwork.Repository on a MongoDB collection.
type ArtworkRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// ArtworkRepoOption configures ArtworkRepository.
type ArtworkRepoOption func(*ArtworkRepository)

// WithArtworkRepoLogger sets the logger for the artwork repository.
func WithArtworkRepoLogger(logger *slog.Logger) ArtworkRepoOption {
	return func(r *ArtworkRepository) {
		r.logger = logger
	}
}

// NewArtworkRepository creates a new MongoDB artwork repository.
func NewArtworkRepository(collection *mongo.Collection, opts ...ArtworkRepoOption) *ArtworkRepository {
	r := &ArtworkRepository{
		collection: collection,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Insert stores a new artwork.
func (r *ArtworkRepository) Insert(ctx context.Context, a *artworkdomain.Artwork) error {
	_, err := r.collection.InsertOne(ctx, artworkToDocument(a))
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to insert artwork",
			slog.String("title", a.Title),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "artwork")
}

// InsertMany stores a batch of artworks.
func (r *ArtworkRepository) InsertMany(ctx context.Context, artworks []*artworkdomain.Artwork) error {
	docs := make([]any, 0, len(artworks))
	for _, a := range artworks {
		docs = append(docs, artworkToDocument(a))
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return HandleMongoError(err, "artworks")
}

// FindByID finds an artwork by ID.
func (r *ArtworkRepository) FindByID(ctx context.Context, id bson.ObjectID) (*artworkdomain.Artwork, error) {
	var doc artworkDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.ErrorContext(ctx, "failed to find artwork by ID",
				slog.String("artwork_id", id.Hex()),
				slog.String("error", err.Error()),
			)
		}
		return nil, HandleMongoError(err, "artwork")
	}

	return documentToArtwork(&doc), nil
}

// Find returns artworks matching the filter.
func (r *ArtworkRepository) Find(
	ctx context.Context,
	f artworkdomain.Filter,
) ([]*artworkdomain.Artwork, error) {
	query := bson.M{}

	if f.PublicOnly {
		query["visibility"] = string(artworkdomain.VisibilityPublic)
	}
	if f.ArtistID != nil {
		query["artist_id"] = *f.ArtistID
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Search != "" {
		// QuoteMeta keeps the match a literal substring; user input is not a
		// regex.
		pattern := regexp.QuoteMeta(f.Search)
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"artist_name": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	opts := FindWithPagination(sortOrder(f.Sort), f.Offset, f.Limit)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, HandleMongoError(err, "artworks")
	}
	defer cursor.Close(ctx)

	results := make([]*artworkdomain.Artwork, 0)
	for cursor.Next(ctx) {
		var doc artworkDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			continue
		}
		results = append(results, documentToArtwork(&doc))
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "artworks")
	}

	return results, nil
}

// FindByIDs returns the artworks with the given IDs, keyed by ID.
func (r *ArtworkRepository) FindByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) (map[bson.ObjectID]*artworkdomain.Artwork, error) {
	result := make(map[bson.ObjectID]*artworkdomain.Artwork, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, HandleMongoError(err, "artworks")
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc artworkDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			continue
		}
		a := documentToArtwork(&doc)
		result[a.ID] = a
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "artworks")
	}

	return result, nil
}

// ApplyUpdate applies the whitelisted field update and returns the resulting
// artwork. Only the supplied fields are written; ownership, like and identity
// fields are never touched.
func (r *ArtworkRepository) ApplyUpdate(
	ctx context.Context,
	id bson.ObjectID,
	upd artworkdomain.Update,
) (*artworkdomain.Artwork, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Medium != nil {
		set["medium"] = *upd.Medium
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.Dimensions != nil {
		set["dimensions"] = *upd.Dimensions
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Visibility != nil {
		set["visibility"] = string(*upd.Visibility)
	}

	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc artworkDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return nil, HandleMongoError(err, "artwork")
	}

	return documentToArtwork(&doc), nil
}

// Delete removes an artwork.
func (r *ArtworkRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to delete artwork",
			slog.String("artwork_id", id.Hex()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "artwork")
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// ToggleLike flips the like state with conditional updates keyed on the
// current liker-set membership. Each branch only matches when the membership
// precondition still holds, so two concurrent toggles from the same user
// cannot both increment (or both decrement) the count.
func (r *ArtworkRepository) ToggleLike(
	ctx context.Context,
	id, userID bson.ObjectID,
) (artworkdomain.LikeResult, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for range toggleLikeAttempts {
		// Unlike branch: only matches while the user is in the liker set.
		var doc artworkDocument
		err := r.collection.FindOneAndUpdate(ctx,
			bson.M{"_id": id, "liked_by": userID},
			bson.M{"$pull": bson.M{"liked_by": userID}, "$inc": bson.M{"likes": -1}},
			opts,
		).Decode(&doc)
		if err == nil {
			return artworkdomain.LikeResult{Liked: false, Likes: max(doc.Likes, 0)}, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return artworkdomain.LikeResult{}, HandleMongoError(err, "artwork")
		}

		// Like branch: only matches while the user is absent.
		err = r.collection.FindOneAndUpdate(ctx,
			bson.M{"_id": id, "liked_by": bson.M{"$ne": userID}},
			bson.M{"$addToSet": bson.M{"liked_by": userID}, "$inc": bson.M{"likes": 1}},
			opts,
		).Decode(&doc)
		if err == nil {
			return artworkdomain.LikeResult{Liked: true, Likes: doc.Likes}, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return artworkdomain.LikeResult{}, HandleMongoError(err, "artwork")
		}

		// Neither branch matched: the artwork is gone, or a concurrent
		// toggle moved the membership between the two updates. Distinguish
		// and retry in the latter case.
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return artworkdomain.LikeResult{}, findErr
		}
	}

	return artworkdomain.LikeResult{}, fmt.Errorf("failed to toggle like on artwork %s: too much contention", id.Hex())
}

// DeleteAll wipes the collection.
func (r *ArtworkRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return HandleMongoError(err, "artworks")
}

// sortOrder maps a sort mode to a MongoDB sort document.
func sortOrder(sort artworkdomain.Sort) bson.D {
	switch sort {
	case artworkdomain.SortOldest:
		return bson.D{{Key: "created_at", Value: 1}}
	case artworkdomain.SortMostLiked:
		return bson.D{{Key: "likes", Value: -1}, {Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

// artworkDocument is the MongoDB representation of an artwork.
type artworkDocument struct {
	ID          bson.ObjectID   `bson:"_id"`
	Title       string          `bson:"title"`
	Description string          `bson:"description"`
	Category    string          `bson:"category"`
	Medium      string          `bson:"medium"`
	ImageURL    string          `bson:"image_url"`
	Dimensions  string          `bson:"dimensions"`
	Price       float64         `bson:"price"`
	Visibility  string          `bson:"visibility"`
	ArtistID    bson.ObjectID   `bson:"artist_id"`
	ArtistName  string          `bson:"artist_name"`
	ArtistEmail string          `bson:"artist_email"`
	ArtistPhoto string          `bson:"artist_photo"`
	Likes       int             `bson:"likes"`
	LikedBy     []bson.ObjectID `bson:"liked_by"`
	CreatedAt   time.Time       `bson:"created_at"`
}

func artworkToDocument(a *artworkdomain.Artwork) artworkDocument {
	likedBy := a.LikedBy
	if likedBy == nil {
		likedBy = []bson.ObjectID{}
	}

	return artworkDocument{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Medium:      a.Medium,
		ImageURL:    a.ImageURL,
		Dimensions:  a.Dimensions,
		Price:       a.Price,
		Visibility:  string(a.Visibility),
		ArtistID:    a.ArtistID,
		ArtistName:  a.ArtistName,
		ArtistEmail: a.ArtistEmail,
		ArtistPhoto: a.ArtistPhoto,
		Likes:       a.Likes,
		LikedBy:     likedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func documentToArtwork(doc *artworkDocument) *artworkdomain.Artwork {
	likedBy := doc.LikedBy
	if likedBy == nil {
		likedBy = []bson.ObjectID{}
	}

	return &artworkdomain.Artwork{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		Medium:      doc.Medium,
		ImageURL:    doc.ImageURL,
		Dimensions:  doc.Dimensions,
		Price:       doc.Price,
		Visibility:  artworkdomain.Visibility(doc.Visibility),
		ArtistID:    doc.ArtistID,
		ArtistName:  doc.ArtistName,
		ArtistEmail: doc.ArtistEmail,
		ArtistPhoto: doc.ArtistPhoto,
		Likes:       doc.Likes,
		LikedBy:     likedBy,
		CreatedAt:   doc.CreatedAt,
	}
}
