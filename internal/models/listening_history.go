package models

import (
	"time"

	"github.com/google/uuid"
)

// ListeningHistory records one playback event with a song snapshot.
type ListeningHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SongTitle string    `gorm:"size:255;not null" json:"song_title"`
	SongSrc   string    `gorm:"type:text" json:"song_src"`
	SongImg   string    `gorm:"type:text" json:"song_img"`
	AlbumID   string    `gorm:"size:100" json:"album_id"`
	Artist    string    `gorm:"size:255" json:"artist"`
	PlayedAt  time.Time `gorm:"not null;index" json:"played_at"`
}
