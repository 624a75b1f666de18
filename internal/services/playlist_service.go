package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPlaylistNameRequired = errors.New("playlist name is required")
	ErrPlaylistNameTaken    = errors.New("a playlist with this name already exists")
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrNoSongsProvided      = errors.New("no songs provided")
	ErrAllSongsExist        = errors.New("all songs already in playlist")
)

// PlaylistService manages user playlists and their ordered song membership.
// Name uniqueness per owner is case-insensitive, enforced by the
// (user_id, name_key) index. Positions are assigned once at insertion and
// never renumbered, so deletions leave gaps. Concurrent adds to the same
// playlist can compute the same starting position; this window is accepted.
type PlaylistService struct {
	db *gorm.DB
}

func NewPlaylistService(db *gorm.DB) *PlaylistService {
	return &PlaylistService{db: db}
}

// ListWithSongs returns the caller's playlists, newest first, each with its
// songs attached. One song query per playlist; users hold few playlists.
func (s *PlaylistService) ListWithSongs(userID uuid.UUID) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&playlists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	for i := range playlists {
		songs, err := s.songsOf(playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Songs = songs
	}
	return playlists, nil
}

func (s *PlaylistService) Create(userID uuid.UUID, req *dto.CreatePlaylistRequest) (*models.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrPlaylistNameRequired
	}
	nameKey := strings.ToLower(name)

	var existing models.Playlist
	err := s.db.Where("user_id = ? AND name_key = ?", userID, nameKey).First(&existing).Error
	if err == nil {
		return nil, ErrPlaylistNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check playlist name: %w", err)
	}

	playlist := models.Playlist{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		NameKey:     nameKey,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	}

	if err := s.db.Create(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlaylistNameTaken
		}
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	playlist.Songs = []models.PlaylistSong{}
	return &playlist, nil
}

// owned loads a playlist only if it belongs to the caller. Existence and
// ownership collapse into one not-found signal so other users' playlist ids
// are not confirmable.
func (s *PlaylistService) owned(userID, playlistID uuid.UUID) (*models.Playlist, error) {
	var playlist models.Playlist
	err := s.db.Where("id = ? AND user_id = ?", playlistID, userID).First(&playlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}
	return &playlist, nil
}

func (s *PlaylistService) Update(userID, playlistID uuid.UUID, req *dto.UpdatePlaylistRequest) (*models.Playlist, error) {
	playlist, err := s.owned(userID, playlistID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrPlaylistNameRequired
		}
		nameKey := strings.ToLower(name)

		var clash models.Playlist
		err := s.db.Where("user_id = ? AND name_key = ? AND id <> ?", userID, nameKey, playlist.ID).First(&clash).Error
		if err == nil {
			return nil, ErrPlaylistNameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check playlist name: %w", err)
		}

		updates["name"] = name
		updates["name_key"] = nameKey
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}

	// updated_at is refreshed even when no field changed.
	updates["updated_at"] = time.Now()

	if err := s.db.Model(playlist).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlaylistNameTaken
		}
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}

	return s.owned(userID, playlistID)
}

// Delete removes the playlist; the store cascade removes its songs.
func (s *PlaylistService) Delete(userID, playlistID uuid.UUID) error {
	playlist, err := s.owned(userID, playlistID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(playlist).Error; err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return nil
}

func (s *PlaylistService) GetSongs(userID, playlistID uuid.UUID) ([]models.PlaylistSong, error) {
	if _, err := s.owned(userID, playlistID); err != nil {
		return nil, err
	}
	return s.songsOf(playlistID)
}

// AddSongs appends new songs at the end of the playlist. Titles already
// present are skipped silently and do not consume a position slot; the
// remaining songs keep their submission order with strictly increasing
// positions starting at max(position)+1 (1 for an empty playlist). If every
// submitted title was already present the whole call is a conflict.
func (s *PlaylistService) AddSongs(userID, playlistID uuid.UUID, inputs []dto.PlaylistSongInput) ([]models.PlaylistSong, error) {
	if len(inputs) == 0 {
		return nil, ErrNoSongsProvided
	}
	for _, in := range inputs {
		if strings.TrimSpace(in.Title) == "" {
			return nil, ErrSongTitleRequired
		}
	}

	playlist, err := s.owned(userID, playlistID)
	if err != nil {
		return nil, err
	}

	var existingTitles []string
	err = s.db.Model(&models.PlaylistSong{}).
		Where("playlist_id = ?", playlist.ID).
		Pluck("song_title", &existingTitles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist songs: %w", err)
	}
	present := make(map[string]bool, len(existingTitles))
	for _, t := range existingTitles {
		present[t] = true
	}

	var maxPosition int
	err = s.db.Model(&models.PlaylistSong{}).
		Where("playlist_id = ?", playlist.ID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read max position: %w", err)
	}
	nextPosition := maxPosition + 1

	now := time.Now()
	batch := make([]models.PlaylistSong, 0, len(inputs))
	for _, in := range inputs {
		title := strings.TrimSpace(in.Title)
		if present[title] {
			continue
		}
		present[title] = true
		batch = append(batch, models.PlaylistSong{
			ID:         uuid.New(),
			PlaylistID: playlist.ID,
			SongTitle:  title,
			SongSrc:    in.Src,
			SongImg:    in.Img,
			AlbumID:    in.AlbumID,
			Artist:     in.Artist,
			Position:   nextPosition + len(batch),
			AddedAt:    now,
		})
	}

	if len(batch) == 0 {
		return nil, ErrAllSongsExist
	}

	if err := s.db.Create(&batch).Error; err != nil {
		return nil, fmt.Errorf("failed to add songs: %w", err)
	}

	return batch, nil
}

// RemoveSong deletes by (playlist, title); removing an absent title is not
// an error.
func (s *PlaylistService) RemoveSong(userID, playlistID uuid.UUID, songTitle string) error {
	title := strings.TrimSpace(songTitle)
	if title == "" {
		return ErrSongTitleRequired
	}

	if _, err := s.owned(userID, playlistID); err != nil {
		return err
	}

	err := s.db.Where("playlist_id = ? AND song_title = ?", playlistID, title).
		Delete(&models.PlaylistSong{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove song: %w", err)
	}
	return nil
}

// RemoveSongs deletes all matching titles in one statement; absent titles
// are ignored.
func (s *PlaylistService) RemoveSongs(userID, playlistID uuid.UUID, songTitles []string) error {
	if len(songTitles) == 0 {
		return ErrNoSongsProvided
	}

	if _, err := s.owned(userID, playlistID); err != nil {
		return err
	}

	err := s.db.Where("playlist_id = ? AND song_title IN ?", playlistID, songTitles).
		Delete(&models.PlaylistSong{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove songs: %w", err)
	}
	return nil
}

func (s *PlaylistService) songsOf(playlistID uuid.UUID) ([]models.PlaylistSong, error) {
	var songs []models.PlaylistSong
	err := s.db.Where("playlist_id = ?", playlistID).
		Order("position ASC, added_at DESC").
		Find(&songs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist songs: %w", err)
	}
	if songs == nil {
		songs = []models.PlaylistSong{}
	}
	return songs, nil
}
