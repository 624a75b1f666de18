package services

import (
	"testing"

	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureProfileProvisionsWithDefaults(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewProfileService(db, identity)

	user, err := identity.Register("alice@x.com", "password1")
	require.NoError(t, err)

	profile, err := svc.EnsureProfile(user, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "dark", profile.Preferences["theme"])
	assert.Equal(t, true, profile.Preferences["notifications"])
	assert.Equal(t, "public", profile.Preferences["privacy"])
	assert.Equal(t, "en", profile.Preferences["language"])

	// Second call returns the same profile, ignoring a different hint.
	again, err := svc.EnsureProfile(user, "other-name")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Equal(t, "alice", again.Username)
}

func TestEnsureProfileFallsBackToEmailLocalPart(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewProfileService(db, identity)

	user, err := identity.Register("bob@x.com", "password1")
	require.NoError(t, err)

	profile, err := svc.EnsureProfile(user, "")
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.Username)
}

func TestEnsureProfileUsernameCollision(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewProfileService(db, identity)

	first, err := identity.Register("one@x.com", "password1")
	require.NoError(t, err)
	_, err = svc.EnsureProfile(first, "shared")
	require.NoError(t, err)

	second, err := identity.Register("two@x.com", "password1")
	require.NoError(t, err)
	profile, err := svc.EnsureProfile(second, "shared")
	require.NoError(t, err)
	assert.NotEqual(t, "shared", profile.Username)
	assert.Contains(t, profile.Username, "shared")
}

func TestGetByUsernameIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewProfileService(db, identity)

	user, err := identity.Register("carol@x.com", "password1")
	require.NoError(t, err)
	_, err = svc.EnsureProfile(user, "Carol")
	require.NoError(t, err)

	profile, err := svc.GetByUsername("carol")
	require.NoError(t, err)
	assert.Equal(t, "Carol", profile.Username)

	_, err = svc.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewProfileService(db, identity)

	owner, err := identity.Register("owner@x.com", "password1")
	require.NoError(t, err)
	_, err = svc.EnsureProfile(owner, "owner")
	require.NoError(t, err)

	stranger, err := identity.Register("stranger@x.com", "password1")
	require.NoError(t, err)

	bio := "not yours"
	_, err = svc.Update(stranger.ID, "owner", &dto.UpdateProfileRequest{Bio: &bio})
	assert.ErrorIs(t, err, ErrNotProfileOwner)
}

func TestProfileUpdatePartialAndCredentialDelegation(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewProfileService(db, identity)

	user, err := identity.Register("dave@x.com", "password1")
	require.NoError(t, err)
	_, err = svc.EnsureProfile(user, "dave")
	require.NoError(t, err)

	bio := "producer"
	email := "dave@y.com"
	password := "password2"
	profile, err := svc.Update(user.ID, "dave", &dto.UpdateProfileRequest{
		Bio:         &bio,
		SocialLinks: map[string]interface{}{"bandcamp": "https://dave.bandcamp.com"},
		Preferences: map[string]interface{}{"theme": "light"},
		Email:       &email,
		Password:    &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "producer", profile.Bio)
	assert.Equal(t, "https://dave.bandcamp.com", profile.SocialLinks["bandcamp"])
	assert.Equal(t, "light", profile.Preferences["theme"])
	// Untouched defaults survive a partial preferences update.
	assert.Equal(t, "en", profile.Preferences["language"])

	// Credential changes went through the identity service.
	_, err = identity.VerifyCredentials("dave@y.com", "password2")
	assert.NoError(t, err)
}
