package httphandler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	artworkapp "github.com/artifyhq/artify-server/internal/application/artwork"
	favoriteapp "github.com/artifyhq/artify-server/internal/application/favorite"
	"github.com/artifyhq/artify-server/internal/application/identity"
	artworkdomain "github.com/artifyhq/artify-server/internal/domain/artwork"
	userdomain "github.com/artifyhq/artify-server/internal/domain/user"
	"github.com/artifyhq/artify-server/internal/middleware"
	"github.com/artifyhq/artify-server/internal/testutil"
)

// stubIssuer hands out predictable tokens keyed on the subject ID.
type stubIssuer struct{}

func (stubIssuer) Issue(userID bson.ObjectID) (string, error) {
	return "token-" + userID.Hex(), nil
}

// env bundles the real application services over in-memory repositories, so
// handler tests exercise the full request path below the router.
type env struct {
	users     *testutil.MemoryUserRepo
	artworks  *testutil.MemoryArtworkRepo
	favorites *testutil.MemoryFavoriteRepo

	identity *identity.Service
	artwork  *artworkapp.Service
	favorite *favoriteapp.Service
}

func newEnv() *env {
	users := testutil.NewMemoryUserRepo()
	artworks := testutil.NewMemoryArtworkRepo()
	favorites := testutil.NewMemoryFavoriteRepo()

	return &env{
		users:     users,
		artworks:  artworks,
		favorites: favorites,
		identity:  identity.NewService(users, testutil.FakeHasher{}, stubIssuer{}),
		artwork:   artworkapp.NewService(artworks, users, favorites, testutil.FakeHasher{}),
		favorite:  favoriteapp.NewService(favorites, artworks),
	}
}

func (e *env) addUser(t *testing.T, name, email string) *userdomain.User {
	t.Helper()
	u, err := userdomain.New(name, email, "hashed:secret123", "")
	require.NoError(t, err)
	require.NoError(t, e.users.Insert(t.Context(), u))
	return u
}

func (e *env) addArtwork(t *testing.T, title string, artist *userdomain.User) *artworkdomain.Artwork {
	t.Helper()
	a, err := artworkdomain.New(
		title, "A piece about "+title, "Painting", "Oil on Canvas",
		"https://images.example.com/"+strings.ReplaceAll(title, " ", "-")+".jpg",
		"24x36", 250, artworkdomain.VisibilityPublic, artist,
	)
	require.NoError(t, err)
	require.NoError(t, e.artworks.Insert(t.Context(), a))
	return a
}

// newContext builds an echo context carrying an optional JSON body.
func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return c, rec
}

// asUser stores the user in the context the way the auth middleware does.
func asUser(c echo.Context, u *userdomain.User) {
	c.Set(middleware.CurrentUserKey, u)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
