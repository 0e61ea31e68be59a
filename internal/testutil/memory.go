package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	favoritedomain "github.com/artifyhq/artify-server/internal/domain/favorite"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
)

// MemoryUserRepo is an in-memory user.Repository for service tests.
type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*userdomain.User
}

// NewMemoryUserRepo creates an empty in-memory user repository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[bson.ObjectID]*userdomain.User)}
}

func (r *MemoryUserRepo) Insert(_ context.Context, u *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return errs.ErrDuplicateEmail
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *MemoryUserRepo) InsertMany(ctx context.Context, users []*userdomain.User) error {
	for _, u := range users {
		if err := r.Insert(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id bson.ObjectID) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *MemoryUserRepo) FindByIDs(
	_ context.Context,
	ids []bson.ObjectID,
) (map[bson.ObjectID]*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[bson.ObjectID]*userdomain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (r *MemoryUserRepo) DeleteAll(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[bson.ObjectID]*userdomain.User)
	return nil
}

// MemoryArtworkRepo is an in-memory artwork.Repository for service tests.
type MemoryArtworkRepo struct {
	mu       sync.Mutex
	artworks map[bson.ObjectID]*artworkdomain.Artwork
}

// NewMemoryArtworkRepo creates an empty in-memory artwork repository.
func NewMemoryArtworkRepo() *MemoryArtworkRepo {
	return &MemoryArtworkRepo{artworks: make(map[bson.ObjectID]*artworkdomain.Artwork)}
}

func (r *MemoryArtworkRepo) Insert(_ context.Context, a *artworkdomain.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *a
	r.artworks[a.ID] = &copied
	return nil
}

func (r *MemoryArtworkRepo) InsertMany(ctx context.Context, artworks []*artworkdomain.Artwork) error {
	for _, a := range artworks {
		if err := r.Insert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryArtworkRepo) FindByID(_ context.Context, id bson.ObjectID) (*artworkdomain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.artworks[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, errs.ErrNotFound
}

func (r *MemoryArtworkRepo) Find(
	_ context.Context,
	f artworkdomain.Filter,
) ([]*artworkdomain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*artworkdomain.Artwork, 0)
	for _, a := range r.artworks {
		if f.PublicOnly && a.Visibility != artworkdomain.VisibilityPublic {
			continue
		}
		if f.ArtistID != nil && a.ArtistID != *f.ArtistID {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Search != "" && !matchesSearch(a, f.Search) {
			continue
		}
		copied := *a
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		switch f.Sort {
		case artworkdomain.SortOldest:
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		case artworkdomain.SortMostLiked:
			if matched[i].Likes != matched[j].Likes {
				return matched[i].Likes > matched[j].Likes
			}
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		default:
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
	})

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []*artworkdomain.Artwork{}, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	return matched, nil
}

func matchesSearch(a *artworkdomain.Artwork, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(a.Title), s) ||
		strings.Contains(strings.ToLower(a.ArtistName), s)
}

func (r *MemoryArtworkRepo) FindByIDs(
	_ context.Context,
	ids []bson.ObjectID,
) (map[bson.ObjectID]*artworkdomain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[bson.ObjectID]*artworkdomain.Artwork, len(ids))
	for _, id := range ids {
		if a, ok := r.artworks[id]; ok {
			copied := *a
			result[id] = &copied
		}
	}
	return result, nil
}

func (r *MemoryArtworkRepo) ApplyUpdate(
	_ context.Context,
	id bson.ObjectID,
	upd artworkdomain.Update,
) (*artworkdomain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.artworks[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	a.Apply(upd)
	copied := *a
	return &copied, nil
}

func (r *MemoryArtworkRepo) Delete(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.artworks[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.artworks, id)
	return nil
}

func (r *MemoryArtworkRepo) ToggleLike(
	_ context.Context,
	id, userID bson.ObjectID,
) (artworkdomain.LikeResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.artworks[id]
	if !ok {
		return artworkdomain.LikeResult{}, errs.ErrNotFound
	}

	liked := a.ToggleLike(userID)
	return artworkdomain.LikeResult{Liked: liked, Likes: a.Likes}, nil
}

func (r *MemoryArtworkRepo) DeleteAll(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.artworks = make(map[bson.ObjectID]*artworkdomain.Artwork)
	return nil
}

// MemoryFavoriteRepo is an in-memory favorite.Repository for service tests.
type MemoryFavoriteRepo struct {
	mu        sync.Mutex
	favorites []*favoritedomain.Favorite
}

// NewMemoryFavoriteRepo creates an empty in-memory favorite repository.
func NewMemoryFavoriteRepo() *MemoryFavoriteRepo {
	return &MemoryFavoriteRepo{}
}

func (r *MemoryFavoriteRepo) Insert(_ context.Context, f *favoritedomain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.favorites {
		if existing.UserID == f.UserID && existing.ArtworkID == f.ArtworkID {
			return nil
		}
	}
	r.favorites = append(r.favorites, f)
	return nil
}

func (r *MemoryFavoriteRepo) InsertMany(ctx context.Context, favorites []*favoritedomain.Favorite) error {
	for _, f := range favorites {
		if err := r.Insert(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryFavoriteRepo) FindByUserID(
	_ context.Context,
	userID bson.ObjectID,
) ([]*favoritedomain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*favoritedomain.Favorite, 0)
	for _, f := range r.favorites {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryFavoriteRepo) Exists(_ context.Context, userID, artworkID bson.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.favorites {
		if f.UserID == userID && f.ArtworkID == artworkID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryFavoriteRepo) Delete(_ context.Context, userID, artworkID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.favorites {
		if f.UserID == userID && f.ArtworkID == artworkID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *MemoryFavoriteRepo) DeleteByArtworkID(_ context.Context, artworkID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if f.ArtworkID != artworkID {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

func (r *MemoryFavoriteRepo) DeleteAll(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.favorites = nil
	return nil
}

// FakeHasher marks hashes with a prefix instead of running bcrypt.
type FakeHasher struct{}

func (FakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (FakeHasher) Compare(hash, password string) error {
	if hash == "" || hash != "hashed:"+password {
		return errs.ErrInvalidCredentials
	}
	return nil
}
