package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSongTitleRequired = errors.New("song title is required")
	ErrAlreadyFavorited  = errors.New("song is already in favorites")
)

// FavoriteService manages per-user song bookmarks. Uniqueness of
// (user, song title) is guaranteed by the store's composite index; the
// pre-check reads only exist so conflicts get a specific message. Two
// concurrent adds for the same title can both pass the pre-check, in which
// case the loser gets the same conflict from the index.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

func (s *FavoriteService) List(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

func (s *FavoriteService) Add(userID uuid.UUID, req *dto.AddFavoriteRequest) (*models.Favorite, error) {
	title := strings.TrimSpace(req.SongTitle)
	if title == "" {
		return nil, ErrSongTitleRequired
	}

	var existing models.Favorite
	err := s.db.Where("user_id = ? AND song_title = ?", userID, title).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}

	favorite := models.Favorite{
		ID:         uuid.New(),
		UserID:     userID,
		SongTitle:  title,
		SongSrc:    req.SongSrc,
		SongImg:    req.SongImg,
		AlbumID:    req.AlbumID,
		AlbumCover: req.AlbumCover,
		Artist:     req.Artist,
		CreatedAt:  time.Now(),
	}

	if err := s.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorited
		}
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return &favorite, nil
}

// Remove deletes the (user, title) favorite. Removing a title that is not
// favorited is not an error.
func (s *FavoriteService) Remove(userID uuid.UUID, songTitle string) error {
	title := strings.TrimSpace(songTitle)
	if title == "" {
		return ErrSongTitleRequired
	}

	err := s.db.Where("user_id = ? AND song_title = ?", userID, title).Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// Check reports whether the title is favorited. Lookup failures other than
// "not found" are logged and reported as false rather than raised.
func (s *FavoriteService) Check(userID uuid.UUID, songTitle string) bool {
	var favorite models.Favorite
	err := s.db.Where("user_id = ? AND song_title = ?", userID, strings.TrimSpace(songTitle)).First(&favorite).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("favorite lookup failed", "error", err, "user_id", userID.String())
		}
		return false
	}
	return true
}

// Toggle flips the favorite state and reports which way it went. The
// check-then-act sequence is not transactional; the unique index resolves
// concurrent toggles.
func (s *FavoriteService) Toggle(userID uuid.UUID, req *dto.AddFavoriteRequest) (string, *models.Favorite, error) {
	title := strings.TrimSpace(req.SongTitle)
	if title == "" {
		return "", nil, ErrSongTitleRequired
	}

	var existing models.Favorite
	err := s.db.Where("user_id = ? AND song_title = ?", userID, title).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return "", nil, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return "removed", nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("failed to check favorite: %w", err)
	}

	favorite, err := s.Add(userID, req)
	if err != nil {
		return "", nil, err
	}
	return "added", favorite, nil
}

func (s *FavoriteService) Count(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
