package services

import (
	"errors"
	"fmt"

	"github.com/ekinolcay/tunewave-backend/internal/models"
	"gorm.io/gorm"
)

var ErrAlbumNotFound = errors.New("album not found")

// CatalogService reads the album/song catalog. Catalog rows are imported
// out of band; this service never writes them.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListAlbums() ([]models.Album, error) {
	var albums []models.Album
	if err := s.db.Preload("Songs").Order("created_at DESC").Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	for i := range albums {
		albums[i].Songs = dedupSongs(albums[i])
	}
	return albums, nil
}

func (s *CatalogService) GetAlbum(id string) (*models.Album, error) {
	var album models.Album
	err := s.db.Preload("Songs").First(&album, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to load album: %w", err)
	}
	album.Songs = dedupSongs(album)
	return &album, nil
}

// dedupSongs drops repeated (title, src) pairs keeping the first occurrence,
// and falls back to the album cover when a song has no image of its own.
// Catalog imports occasionally double up tracks; the clients expect each
// track once.
func dedupSongs(album models.Album) []models.Song {
	seen := make(map[[2]string]bool, len(album.Songs))
	out := make([]models.Song, 0, len(album.Songs))
	for _, song := range album.Songs {
		key := [2]string{song.Title, song.Src}
		if seen[key] {
			continue
		}
		seen[key] = true
		if song.Img == "" {
			song.Img = album.CoverImage
		}
		out = append(out, song)
	}
	return out
}
