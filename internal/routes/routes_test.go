package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/handlers"
	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Album{},
		&models.Song{},
		&models.Favorite{},
		&models.Playlist{},
		&models.PlaylistSong{},
		&models.ListeningHistory{},
	))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		AppEnv:    "development",
		UploadDir: t.TempDir(),
	}

	identity := services.NewIdentityService(db)
	tokens := services.NewTokenService(cfg)
	profiles := services.NewProfileService(db, identity)
	catalog := services.NewCatalogService(db)
	favorites := services.NewFavoriteService(db)
	playlists := services.NewPlaylistService(db)
	history := services.NewHistoryService(db)

	app := fiber.New()
	Setup(app, cfg, identity, profiles,
		handlers.NewUserHandler(cfg, identity, profiles, tokens),
		handlers.NewAlbumHandler(cfg, catalog),
		handlers.NewFavoriteHandler(cfg, favorites),
		handlers.NewPlaylistHandler(cfg, playlists),
		handlers.NewHistoryHandler(cfg, history),
		handlers.NewHealthHandler(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestRegisterSigninPlaylistScenario(t *testing.T) {
	app := newTestApp(t)

	// Register
	resp, body := doJSON(t, app, "POST", "/users/insert", "", map[string]string{
		"email": "a@x.com", "username": "alice", "password": "password1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "200::Registration successful", string(body))

	// Signin
	resp, body = doJSON(t, app, "POST", "/users/signin", "", map[string]string{
		"email": "a@x.com", "password": "password1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(string(body), "200::"))
	token := strings.TrimPrefix(string(body), "200::")
	require.NotEmpty(t, token)

	// Username resolution from the body token
	resp, body = doJSON(t, app, "POST", "/users/getusername", "", map[string]string{"csrid": token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", string(body))

	// Create playlist
	resp, body = doJSON(t, app, "POST", "/api/playlists/create", token, map[string]string{
		"name": "Road Trip",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var playlist models.Playlist
	require.NoError(t, json.Unmarshal(body, &playlist))
	assert.Equal(t, "Road Trip", playlist.Name)
	assert.Empty(t, playlist.Songs)

	// Add Song A → position 1
	resp, body = doJSON(t, app, "POST", "/api/playlists/"+playlist.ID.String()+"/songs/add", token,
		map[string]interface{}{"songs": []map[string]string{{"title": "Song A"}}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var added struct {
		Songs []models.PlaylistSong `json:"songs"`
	}
	require.NoError(t, json.Unmarshal(body, &added))
	require.Len(t, added.Songs, 1)
	assert.Equal(t, 1, added.Songs[0].Position)

	// Re-adding the same title is a conflict
	resp, body = doJSON(t, app, "POST", "/api/playlists/"+playlist.ID.String()+"/songs/add", token,
		map[string]interface{}{"songs": []map[string]string{{"title": "Song A"}}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "all songs already in playlist")

	// Song B → position 2
	resp, body = doJSON(t, app, "POST", "/api/playlists/"+playlist.ID.String()+"/songs/add", token,
		map[string]interface{}{"songs": []map[string]string{{"title": "Song B"}}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &added))
	require.Len(t, added.Songs, 1)
	assert.Equal(t, 2, added.Songs[0].Position)

	// List with nested songs
	resp, body = doJSON(t, app, "GET", "/api/playlists/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Playlists []models.Playlist `json:"playlists"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed.Playlists, 1)
	assert.Len(t, listed.Playlists[0].Songs, 2)
}

func TestFavoritesFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)

	_, _ = doJSON(t, app, "POST", "/users/insert", "", map[string]string{
		"email": "fav@x.com", "username": "fan", "password": "password1",
	})
	_, body := doJSON(t, app, "POST", "/users/signin", "", map[string]string{
		"email": "fav@x.com", "password": "password1",
	})
	token := strings.TrimPrefix(string(body), "200::")

	// Unauthenticated requests are rejected with the collapsed message.
	resp, body := doJSON(t, app, "GET", "/api/favorites/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "invalid or expired token")

	resp, _ = doJSON(t, app, "POST", "/api/favorites/add", token, map[string]string{
		"songTitle": "Midnight City", "artist": "M83",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, "POST", "/api/favorites/add", token, map[string]string{
		"songTitle": "Midnight City",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "already in favorites")

	resp, body = doJSON(t, app, "POST", "/api/favorites/check", token, map[string]string{
		"songTitle": "Midnight City",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"isFavorite":true`)

	resp, body = doJSON(t, app, "GET", "/api/favorites/count", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"count":1`)

	resp, body = doJSON(t, app, "POST", "/api/favorites/toggle", token, map[string]string{
		"songTitle": "Midnight City",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"action":"removed"`)

	resp, _ = doJSON(t, app, "DELETE", "/api/favorites/remove", token, map[string]string{
		"songTitle": "Midnight City",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicCatalogAndHealth(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/albums", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, "GET", "/albums/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Album not found")
}
