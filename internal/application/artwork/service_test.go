package artwork_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	artworkapp "github.com/artifyhq/artify-server/internal/application/artwork"
	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	favoritedomain "github.com/artifyhq/artify-server/internal/domain/favorite"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
	"github.com/artifyhq/artify-server/internal/testutil"
)

type fixture struct {
	svc       *artworkapp.Service
	artworks  *testutil.MemoryArtworkRepo
	users     *testutil.MemoryUserRepo
	favorites *testutil.MemoryFavoriteRepo
}

func newFixture() *fixture {
	artworks := testutil.NewMemoryArtworkRepo()
	users := testutil.NewMemoryUserRepo()
	favorites := testutil.NewMemoryFavoriteRepo()
	return &fixture{
		svc:       artworkapp.NewService(artworks, users, favorites, testutil.FakeHasher{}),
		artworks:  artworks,
		users:     users,
		favorites: favorites,
	}
}

func (f *fixture) addUser(t *testing.T, name, email string) *userdomain.User {
	t.Helper()
	u, err := userdomain.New(name, email, "hashed:pw", "")
	require.NoError(t, err)
	require.NoError(t, f.users.Insert(context.Background(), u))
	return u
}

func (f *fixture) addArtwork(
	t *testing.T,
	artist *userdomain.User,
	title string,
	visibility artworkdomain.Visibility,
	createdAt time.Time,
	likes int,
) *artworkdomain.Artwork {
	t.Helper()
	a, err := artworkdomain.New(title, "desc", "Painting", "Oil", "https://img.example/a.jpg", "", 10, visibility, artist)
	require.NoError(t, err)
	a.CreatedAt = createdAt
	a.Likes = likes
	require.NoError(t, f.artworks.Insert(context.Background(), a))
	return a
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	other := f.addUser(t, "Mike Chen", "mike@artify.com")

	now := time.Now().UTC()
	oldest := f.addArtwork(t, artist, "Morning Mist", artworkdomain.VisibilityPublic, now.Add(-3*time.Hour), 5)
	middle := f.addArtwork(t, other, "City Lights", artworkdomain.VisibilityPublic, now.Add(-2*time.Hour), 90)
	newest := f.addArtwork(t, artist, "Evening Glow", artworkdomain.VisibilityPublic, now.Add(-time.Hour), 40)
	f.addArtwork(t, artist, "Hidden Draft", artworkdomain.VisibilityPrivate, now, 0)

	t.Run("newest first, private excluded", func(t *testing.T) {
		got, err := f.svc.List(ctx, artworkapp.ListQuery{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, newest.ID, got[0].ID)
		assert.Equal(t, oldest.ID, got[2].ID)
	})

	t.Run("oldest sort", func(t *testing.T) {
		got, err := f.svc.List(ctx, artworkapp.ListQuery{Sort: "oldest"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, oldest.ID, got[0].ID)
	})

	t.Run("most liked sort", func(t *testing.T) {
		got, err := f.svc.List(ctx, artworkapp.ListQuery{Sort: "most-liked"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, middle.ID, got[0].ID)
	})

	t.Run("search by artist name", func(t *testing.T) {
		got, err := f.svc.List(ctx, artworkapp.ListQuery{Search: "sarah"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := f.svc.List(ctx, artworkapp.ListQuery{Category: "Sculpture"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("pages past the data are empty", func(t *testing.T) {
		got, err := f.svc.List(ctx, artworkapp.ListQuery{Page: 3})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")

	now := time.Now().UTC()
	for i := range artworkapp.PageSize + 3 {
		f.addArtwork(t, artist, "Piece", artworkdomain.VisibilityPublic, now.Add(time.Duration(i)*time.Minute), i)
	}

	page1, err := f.svc.List(ctx, artworkapp.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1, artworkapp.PageSize)

	page2, err := f.svc.List(ctx, artworkapp.ListQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2, 3)

	// Page zero behaves as page one.
	pageZero, err := f.svc.List(ctx, artworkapp.ListQuery{Page: 0})
	require.NoError(t, err)
	assert.Len(t, pageZero, artworkapp.PageSize)
}

func TestHighlights(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")

	now := time.Now().UTC()
	for i := range artworkapp.HighlightLimit + 2 {
		f.addArtwork(t, artist, "Piece", artworkdomain.VisibilityPublic, now.Add(time.Duration(i)*time.Minute), i*10)
	}

	featured, err := f.svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, artworkapp.HighlightLimit)
	assert.Equal(t, 70, featured[0].Likes)

	latest, err := f.svc.Latest(ctx)
	require.NoError(t, err)
	require.Len(t, latest, artworkapp.HighlightLimit)
	assert.True(t, latest[0].CreatedAt.After(latest[1].CreatedAt))
}

func TestListRefreshesArtistIdentity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	f.addArtwork(t, artist, "Portrait", artworkdomain.VisibilityPublic, time.Now().UTC(), 1)

	// The artist record changes after the artwork stamped its identity.
	artist.Name = "Sarah J. Photography"

	got, err := f.svc.List(ctx, artworkapp.ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah J. Photography", got[0].ArtistName)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	created := f.addArtwork(t, artist, "Portrait", artworkdomain.VisibilityPublic, time.Now().UTC(), 0)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.Get(ctx, bson.NewObjectID())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	stranger := f.addUser(t, "Mike Chen", "mike@artify.com")

	now := time.Now().UTC()
	f.addArtwork(t, owner, "Public Piece", artworkdomain.VisibilityPublic, now.Add(-time.Hour), 0)
	f.addArtwork(t, owner, "Private Piece", artworkdomain.VisibilityPrivate, now, 0)

	t.Run("owner sees private artworks", func(t *testing.T) {
		got, err := f.svc.ListByUser(ctx, owner.ID, owner.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Private Piece", got[0].Title)
	})

	t.Run("other callers are rejected", func(t *testing.T) {
		_, err := f.svc.ListByUser(ctx, stranger.ID, owner.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")

	t.Run("stamps artist and defaults", func(t *testing.T) {
		created, err := f.svc.Create(ctx, artworkapp.CreateCommand{
			Title:       "Sky Study",
			Description: "Clouds at dawn",
			Category:    "Painting",
			Medium:      "Watercolor",
			ImageURL:    "https://img.example/sky.jpg",
			Artist:      artist,
		})
		require.NoError(t, err)

		assert.Equal(t, artist.ID, created.ArtistID)
		assert.Equal(t, "Sarah Johnson", created.ArtistName)
		assert.Equal(t, artworkdomain.VisibilityPublic, created.Visibility)
		assert.Zero(t, created.Price)
		assert.Zero(t, created.Likes)

		stored, err := f.artworks.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sky Study", stored.Title)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := f.svc.Create(ctx, artworkapp.CreateCommand{
			Title:  "No Description",
			Artist: artist,
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	stranger := f.addUser(t, "Mike Chen", "mike@artify.com")
	created := f.addArtwork(t, owner, "Original", artworkdomain.VisibilityPublic, time.Now().UTC(), 7)

	newTitle := "Renamed"

	t.Run("owner updates whitelisted fields", func(t *testing.T) {
		updated, err := f.svc.Update(ctx, artworkapp.UpdateCommand{
			ArtworkID: created.ID,
			CallerID:  owner.ID,
			Changes:   artworkdomain.Update{Title: &newTitle},
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, 7, updated.Likes)
		assert.Equal(t, owner.ID, updated.ArtistID)
	})

	t.Run("unknown artwork", func(t *testing.T) {
		_, err := f.svc.Update(ctx, artworkapp.UpdateCommand{
			ArtworkID: bson.NewObjectID(),
			CallerID:  owner.ID,
			Changes:   artworkdomain.Update{Title: &newTitle},
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		_, err := f.svc.Update(ctx, artworkapp.UpdateCommand{
			ArtworkID: created.ID,
			CallerID:  stranger.ID,
			Changes:   artworkdomain.Update{Title: &newTitle},
		})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("invalid changes", func(t *testing.T) {
		empty := ""
		_, err := f.svc.Update(ctx, artworkapp.UpdateCommand{
			ArtworkID: created.ID,
			CallerID:  owner.ID,
			Changes:   artworkdomain.Update{Title: &empty},
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	stranger := f.addUser(t, "Mike Chen", "mike@artify.com")
	created := f.addArtwork(t, owner, "Doomed", artworkdomain.VisibilityPublic, time.Now().UTC(), 0)

	// A favorite referencing the artwork must cascade away on delete.
	_, err := f.svc.ToggleLike(ctx, created.ID, stranger.ID)
	require.NoError(t, err)
	require.NoError(t, f.favorites.Insert(ctx, favoritedomain.New(stranger.ID, created.ID)))

	t.Run("non-owner is rejected", func(t *testing.T) {
		err := f.svc.Delete(ctx, stranger.ID, created.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("owner deletes with cascade", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(ctx, owner.ID, created.ID))

		_, err := f.artworks.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		remaining, err := f.favorites.FindByUserID(ctx, stranger.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("already gone", func(t *testing.T) {
		err := f.svc.Delete(ctx, owner.ID, created.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	artist := f.addUser(t, "Sarah Johnson", "sarah@artify.com")
	created := f.addArtwork(t, artist, "Toggle Target", artworkdomain.VisibilityPublic, time.Now().UTC(), 0)
	liker := bson.NewObjectID()

	first, err := f.svc.ToggleLike(ctx, created.ID, liker)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.Likes)

	second, err := f.svc.ToggleLike(ctx, created.ID, liker)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.Likes)

	_, err = f.svc.ToggleLike(ctx, bson.NewObjectID(), liker)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	// Pre-existing data is wiped by the seed.
	leftover := f.addUser(t, "Leftover", "leftover@artify.com")
	f.addArtwork(t, leftover, "Old Piece", artworkdomain.VisibilityPublic, time.Now().UTC(), 1)

	result, err := f.svc.Seed(ctx)
	require.NoError(t, err)

	require.Len(t, result.Users, 3)
	assert.Equal(t, "demo@artify.com", result.Users[0].Email)
	assert.Equal(t, "hashed:"+artworkapp.SeedPassword, result.Users[0].PasswordHash)
	assert.Equal(t, 5, result.Artworks)
	assert.Equal(t, 3, result.Favorites)

	_, err = f.users.FindByEmail(ctx, "leftover@artify.com")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	featured, err := f.svc.Featured(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	assert.Equal(t, "Mountain Majesty", featured[0].Title)
	assert.Equal(t, 88, featured[0].Likes)

	latest, err := f.svc.Latest(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, "Mountain Majesty", latest[0].Title)

	sarah, err := f.users.FindByEmail(ctx, "sarah@artify.com")
	require.NoError(t, err)
	gallery, err := f.svc.ListByUser(ctx, sarah.ID, sarah.ID)
	require.NoError(t, err)
	assert.Len(t, gallery, 2)

	demo, err := f.users.FindByEmail(ctx, "demo@artify.com")
	require.NoError(t, err)
	demoFavorites, err := f.favorites.FindByUserID(ctx, demo.ID)
	require.NoError(t, err)
	assert.Len(t, demoFavorites, 2)
}
