package services

import (
	"testing"

	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDedupsSongsAndFallsBackToCover(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	album := models.Album{
		ID:         "ok-computer",
		Title:      "OK Computer",
		Artist:     "Radiohead",
		CoverImage: "/covers/okc.jpg",
	}
	require.NoError(t, db.Create(&album).Error)
	songs := []models.Song{
		{ID: uuid.New(), AlbumID: album.ID, Title: "Airbag", Src: "/songs/airbag.mp3", Img: "/imgs/airbag.jpg"},
		{ID: uuid.New(), AlbumID: album.ID, Title: "Airbag", Src: "/songs/airbag.mp3"},
		{ID: uuid.New(), AlbumID: album.ID, Title: "Airbag", Src: "/songs/airbag-live.mp3"},
		{ID: uuid.New(), AlbumID: album.ID, Title: "Let Down", Src: "/songs/letdown.mp3"},
	}
	require.NoError(t, db.Create(&songs).Error)

	got, err := svc.GetAlbum("ok-computer")
	require.NoError(t, err)
	// Same (title, src) collapses; same title with a different src does not.
	require.Len(t, got.Songs, 3)
	imgBySrc := make(map[string]string, len(got.Songs))
	for _, song := range got.Songs {
		imgBySrc[song.Src] = song.Img
	}
	assert.Equal(t, "/imgs/airbag.jpg", imgBySrc["/songs/airbag.mp3"])
	// Songs without their own image inherit the album cover.
	assert.Equal(t, "/covers/okc.jpg", imgBySrc["/songs/airbag-live.mp3"])
	assert.Equal(t, "/covers/okc.jpg", imgBySrc["/songs/letdown.mp3"])
}

func TestCatalogGetAlbumNotFound(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))

	_, err := svc.GetAlbum("missing")
	assert.ErrorIs(t, err, ErrAlbumNotFound)
}

func TestCatalogListAlbums(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.Album{ID: "a1", Title: "First"}).Error)
	require.NoError(t, db.Create(&models.Album{ID: "a2", Title: "Second"}).Error)

	albums, err := svc.ListAlbums()
	require.NoError(t, err)
	assert.Len(t, albums, 2)
}
