package models

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a user-owned named collection. NameKey holds the lowercased,
// trimmed name so the (user_id, name_key) unique index enforces
// case-insensitive name uniqueness per owner at the store level.
type Playlist struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_playlists_user_name" json:"user_id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	NameKey     string         `gorm:"size:100;not null;uniqueIndex:idx_playlists_user_name" json:"-"`
	Description string         `gorm:"type:text" json:"description"`
	CoverImage  string         `gorm:"type:text" json:"cover_image"`
	Songs       []PlaylistSong `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"songs"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PlaylistSong is a song snapshot inside a playlist. Position is assigned
// once at insertion and never renumbered; deletions leave gaps.
type PlaylistSong struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlaylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"playlist_id"`
	SongTitle  string    `gorm:"size:255;not null" json:"song_title"`
	SongSrc    string    `gorm:"type:text" json:"song_src"`
	SongImg    string    `gorm:"type:text" json:"song_img"`
	AlbumID    string    `gorm:"size:100" json:"album_id"`
	Artist     string    `gorm:"size:255" json:"artist"`
	Position   int       `gorm:"not null" json:"position"`
	AddedAt    time.Time `json:"added_at"`
}
