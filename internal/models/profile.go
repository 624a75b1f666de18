package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the 1:1 user-facing metadata for an identity. It is provisioned
// lazily on the first authenticated request that needs it.
type Profile struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Username       string            `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Bio            string            `gorm:"type:text" json:"bio"`
	Location       string            `gorm:"size:100" json:"location"`
	ProfilePicture string            `gorm:"type:text" json:"profile_picture"`
	SocialLinks    datatypes.JSONMap `gorm:"type:jsonb" json:"social_links"`
	Preferences    datatypes.JSONMap `gorm:"type:jsonb" json:"preferences"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// DefaultPreferences returns the preference map applied to new profiles.
func DefaultPreferences() datatypes.JSONMap {
	return datatypes.JSONMap{
		"theme":         "dark",
		"notifications": true,
		"privacy":       "public",
		"language":      "en",
	}
}
