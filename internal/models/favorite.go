package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user-owned bookmark of a song. Song fields are a snapshot
// taken at add time, not a reference into the catalog. The composite unique
// index is the authoritative guard against double-favoriting; service-level
// pre-checks only exist for friendlier error messages.
type Favorite struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_title" json:"user_id"`
	SongTitle  string    `gorm:"size:255;not null;uniqueIndex:idx_favorites_user_title" json:"song_title"`
	SongSrc    string    `gorm:"type:text" json:"song_src"`
	SongImg    string    `gorm:"type:text" json:"song_img"`
	AlbumID    string    `gorm:"size:100" json:"album_id"`
	AlbumCover string    `gorm:"type:text" json:"album_cover"`
	Artist     string    `gorm:"size:255" json:"artist"`
	CreatedAt  time.Time `json:"created_at"`
}
