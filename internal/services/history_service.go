package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	historyDefaultLimit = 50
	historyMaxLimit     = 100
)

// HistoryService records playback events with a song snapshot.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

func (s *HistoryService) Record(userID uuid.UUID, req *dto.RecordHistoryRequest) (*models.ListeningHistory, error) {
	title := strings.TrimSpace(req.SongTitle)
	if title == "" {
		return nil, ErrSongTitleRequired
	}

	entry := models.ListeningHistory{
		ID:        uuid.New(),
		UserID:    userID,
		SongTitle: title,
		SongSrc:   req.SongSrc,
		SongImg:   req.SongImg,
		AlbumID:   req.AlbumID,
		Artist:    req.Artist,
		PlayedAt:  time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}
	return &entry, nil
}

func (s *HistoryService) ListRecent(userID uuid.UUID, limit int) ([]models.ListeningHistory, error) {
	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	var entries []models.ListeningHistory
	err := s.db.Where("user_id = ?", userID).
		Order("played_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}
