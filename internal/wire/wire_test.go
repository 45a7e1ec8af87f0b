package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"film-catalog/internal/data/repository/memory"
	"film-catalog/pkg/middleware"
	"film-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	config := &utils.Config{App: utils.AppConfig{Name: "film-catalog", Storage: utils.StorageMemory}}
	app := Wiring(memory.NewRepository(zap.NewNop()), config, zap.NewNop())
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestUserAndFriendRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, login := range []string{"alice", "bob", "carol"} {
		resp, env := do(t, srv, http.MethodPost, "/users",
			`{"email":"`+login+`@example.com","login":"`+login+`","birthday":"1990-01-01"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	}

	resp, _ := do(t, srv, http.MethodPut, "/users/1/friends/3", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPut, "/users/2/friends/3", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := do(t, srv, http.MethodGet, "/users/1/friends/common/2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var common []struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &common))
	require.Len(t, common, 1)
	assert.Equal(t, "carol", common[0].Login)

	resp, _ = do(t, srv, http.MethodPut, "/users/3/friends/1/confirm", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPut, "/users/1/friends/1", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPut, "/users/1/friends/999999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserValidationRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, env := do(t, srv, http.MethodPost, "/users",
		`{"email":"nope","login":"has space","birthday":"1990-01-01"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Contains(t, env.Errors, "Email")
	assert.Contains(t, env.Errors, "Login")
}

func TestFilmRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, env := do(t, srv, http.MethodPost, "/users",
		`{"email":"a@example.com","login":"a","birthday":"1990-01-01"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	resp, env = do(t, srv, http.MethodPost, "/films",
		`{"name":"Up","description":"Balloons","releaseDate":"2009-05-29","duration":96,"mpa":{"id":2},"genres":[{"id":3},{"id":1},{"id":3}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	var film struct {
		ID     int64 `json:"id"`
		Genres []struct {
			ID int `json:"id"`
		} `json:"genres"`
		Mpa struct {
			Name string `json:"name"`
		} `json:"mpa"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &film))
	require.Len(t, film.Genres, 2)
	assert.Equal(t, 1, film.Genres[0].ID)
	assert.Equal(t, 3, film.Genres[1].ID)
	assert.Equal(t, "PG", film.Mpa.Name)

	resp, _ = do(t, srv, http.MethodPost, "/films",
		`{"name":"Lost","releaseDate":"2009-05-29","duration":96,"mpa":{"id":42}}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPut, "/films/1/like/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPut, "/films/1/like/1", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = do(t, srv, http.MethodGet, "/films/popular?count=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var popular []struct {
		ID        int64 `json:"id"`
		LikeCount int   `json:"like_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &popular))
	require.Len(t, popular, 1)
	assert.Equal(t, 1, popular[0].LikeCount)

	resp, _ = do(t, srv, http.MethodGet, "/films/popular?count=0", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodGet, "/films/popular?count=many", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodDelete, "/films/1/like/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodGet, "/films/7", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogAndHealthRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, env := do(t, srv, http.MethodGet, "/genres", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var genres []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &genres))
	assert.Len(t, genres, 6)

	resp, _ = do(t, srv, http.MethodGet, "/mpa/9", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env = do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)
}
