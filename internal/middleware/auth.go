package middleware

import (
	"errors"
	"strings"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const authUserKey = "auth_user"

// AuthUser is the authenticated identity attached to the request context.
type AuthUser struct {
	ID       uuid.UUID
	Email    string
	Username string
}

// unauthorized is the single response for every gate failure. Which part of
// validation failed is never surfaced.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}

// JWTProtected validates the token's signature and expiry. Clients send the
// bare token in the Authorization header; the extractor expects a scheme, so
// one is prepended when missing.
func JWTProtected(cfg *config.Config) fiber.Handler {
	jwtHandler := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})

	return func(c *fiber.Ctx) error {
		auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if auth != "" && !strings.HasPrefix(auth, "Bearer ") {
			c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+auth)
		}
		return jwtHandler(c)
	}
}

// ResolveIdentity runs after JWTProtected. It confirms the subject still
// exists, resolves the display username (profile, then token claim, then
// email local part) and attaches the AuthUser to the context. Failures
// collapse into the same unauthorized response as signature errors.
func ResolveIdentity(identity *services.IdentityService, profiles *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}
		sub, _ := claims["userId"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return unauthorized(c)
		}

		user, err := identity.FetchByID(userID)
		if err != nil {
			return unauthorized(c)
		}

		claimUsername, _ := claims["username"].(string)
		username := claimUsername
		if profile, err := profiles.EnsureProfile(user, claimUsername); err == nil {
			username = profile.Username
		} else if username == "" {
			username = strings.Split(user.Email, "@")[0]
		}

		c.Locals(authUserKey, AuthUser{
			ID:       user.ID,
			Email:    user.Email,
			Username: username,
		})
		return c.Next()
	}
}

// CurrentUser extracts the identity stored by ResolveIdentity.
func CurrentUser(c *fiber.Ctx) (AuthUser, error) {
	user, ok := c.Locals(authUserKey).(AuthUser)
	if !ok {
		return AuthUser{}, errors.New("no authenticated user in context")
	}
	return user, nil
}
