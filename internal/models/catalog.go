package models

import (
	"time"

	"github.com/google/uuid"
)

// Album is a catalog entry. IDs are assigned by the catalog import, not
// generated here.
type Album struct {
	ID          string    `gorm:"size:100;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Artist      string    `gorm:"size:255" json:"artist"`
	CoverImage  string    `gorm:"type:text" json:"cover_image"`
	Category    string    `gorm:"size:100" json:"category"`
	Genre       string    `gorm:"size:100" json:"genre"`
	Description string    `gorm:"type:text" json:"description"`
	Songs       []Song    `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"songs"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Song struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AlbumID  string    `gorm:"size:100;not null;index" json:"album_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Src      string    `gorm:"type:text" json:"src"`
	Img      string    `gorm:"type:text" json:"img"`
	Duration string    `gorm:"size:20" json:"duration"`
}
