package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNotProfileOwner  = errors.New("you can only update your own profile")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUsernameRequired = errors.New("username cannot be blank")
)

type ProfileService struct {
	db       *gorm.DB
	identity *IdentityService
}

func NewProfileService(db *gorm.DB, identity *IdentityService) *ProfileService {
	return &ProfileService{db: db, identity: identity}
}

// EnsureProfile returns the user's profile, creating it if missing. The
// display username comes from the hint (usually the token claim), falling
// back to the local part of the email.
func (s *ProfileService) EnsureProfile(user *models.User, usernameHint string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("user_id = ?", user.ID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	username := strings.TrimSpace(usernameHint)
	if username == "" {
		username = strings.Split(user.Email, "@")[0]
	}

	profile = models.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		Username:    username,
		SocialLinks: datatypes.JSONMap{},
		Preferences: models.DefaultPreferences(),
	}

	if err := s.db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either a concurrent request provisioned it first, or the
			// username belongs to someone else.
			var existing models.Profile
			if readErr := s.db.Where("user_id = ?", user.ID).First(&existing).Error; readErr == nil {
				return &existing, nil
			}
			profile.Username = username + "_" + user.ID.String()[:8]
			if retryErr := s.db.Create(&profile).Error; retryErr != nil {
				return nil, fmt.Errorf("failed to create profile: %w", retryErr)
			}
			return &profile, nil
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &profile, nil
}

func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// GetByUsername looks up a profile case-insensitively.
func (s *ProfileService) GetByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// Update applies a partial update to the profile addressed by username.
// Only the owner may update; email and password changes are delegated to
// the identity service.
func (s *ProfileService) Update(callerID uuid.UUID, username string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if profile.UserID != callerID {
		return nil, ErrNotProfileOwner
	}

	if req.Username != nil {
		newName := strings.TrimSpace(*req.Username)
		if newName == "" {
			return nil, ErrUsernameRequired
		}
		profile.Username = newName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.SocialLinks != nil {
		if profile.SocialLinks == nil {
			profile.SocialLinks = datatypes.JSONMap{}
		}
		for k, v := range req.SocialLinks {
			profile.SocialLinks[k] = v
		}
	}
	if req.Preferences != nil {
		if profile.Preferences == nil {
			profile.Preferences = models.DefaultPreferences()
		}
		for k, v := range req.Preferences {
			profile.Preferences[k] = v
		}
	}

	if req.Email != nil {
		if err := s.identity.UpdateEmail(callerID, *req.Email); err != nil {
			return nil, err
		}
	}
	if req.Password != nil {
		if err := s.identity.UpdatePassword(callerID, *req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// SetProfilePicture stores the uploaded picture reference.
func (s *ProfileService) SetProfilePicture(callerID uuid.UUID, username string, pictureURL string) (*models.Profile, error) {
	profile, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if profile.UserID != callerID {
		return nil, ErrNotProfileOwner
	}

	profile.ProfilePicture = pictureURL
	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}
	return profile, nil
}
