package favorite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	favoriteapp "github.com/artifyhq/artify-server/internal/application/favorite"
	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	"github.com/artifyhq/artify-server/internal/domain/errs"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
	"github.com/artifyhq/artify-server/internal/testutil"
)

type fixture struct {
	svc       *favoriteapp.Service
	artworks  *testutil.MemoryArtworkRepo
	favorites *testutil.MemoryFavoriteRepo
}

func newFixture() *fixture {
	artworks := testutil.NewMemoryArtworkRepo()
	favorites := testutil.NewMemoryFavoriteRepo()
	return &fixture{
		svc:       favoriteapp.NewService(favorites, artworks),
		artworks:  artworks,
		favorites: favorites,
	}
}

func (f *fixture) addArtwork(t *testing.T, title string) *artworkdomain.Artwork {
	t.Helper()

	artist, err := userdomain.New("Sarah Johnson", "sarah@artify.com", "hashed:pw", "")
	require.NoError(t, err)

	a, err := artworkdomain.New(title, "desc", "Painting", "Oil", "https://img.example/a.jpg",
		"", 10, artworkdomain.VisibilityPublic, artist)
	require.NoError(t, err)
	require.NoError(t, f.artworks.Insert(context.Background(), a))
	return a
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()

	t.Run("creates favorite", func(t *testing.T) {
		f := newFixture()
		a := f.addArtwork(t, "Portrait")

		created, err := f.svc.Add(ctx, userID, a.ID)
		require.NoError(t, err)
		assert.True(t, created)

		exists, err := f.svc.Check(ctx, userID, a.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate add reports not created", func(t *testing.T) {
		f := newFixture()
		a := f.addArtwork(t, "Portrait")

		_, err := f.svc.Add(ctx, userID, a.ID)
		require.NoError(t, err)

		created, err := f.svc.Add(ctx, userID, a.ID)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("unknown artwork", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Add(ctx, userID, bson.NewObjectID())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID := bson.NewObjectID()

	// Unknown artwork IDs read as not favorited, no existence check.
	favorited, err := f.svc.Check(ctx, userID, bson.NewObjectID())
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID := bson.NewObjectID()
	a := f.addArtwork(t, "Portrait")

	_, err := f.svc.Add(ctx, userID, a.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(ctx, userID, a.ID))

	favorited, err := f.svc.Check(ctx, userID, a.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	err = f.svc.Remove(ctx, userID, a.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	userID := bson.NewObjectID()
	stranger := bson.NewObjectID()

	t.Run("newest favorite first", func(t *testing.T) {
		f := newFixture()
		first := f.addArtwork(t, "First Saved")
		second := f.addArtwork(t, "Second Saved")

		_, err := f.svc.Add(ctx, userID, first.ID)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
		_, err = f.svc.Add(ctx, userID, second.ID)
		require.NoError(t, err)

		got, err := f.svc.List(ctx, userID, userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, first.ID, got[1].ID)
	})

	t.Run("deleted artworks are dropped silently", func(t *testing.T) {
		f := newFixture()
		kept := f.addArtwork(t, "Kept")
		doomed := f.addArtwork(t, "Doomed")

		_, err := f.svc.Add(ctx, userID, kept.ID)
		require.NoError(t, err)
		_, err = f.svc.Add(ctx, userID, doomed.ID)
		require.NoError(t, err)

		require.NoError(t, f.artworks.Delete(ctx, doomed.ID))

		got, err := f.svc.List(ctx, userID, userID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, kept.ID, got[0].ID)
	})

	t.Run("foreign collection is rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.List(ctx, stranger, userID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
