package services

import (
	"errors"
	"time"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure surfaced by Verify. Malformed
// tokens, bad signatures, expiry and missing claims all collapse into it so
// callers cannot tell which part of validation failed.
var ErrInvalidToken = errors.New("invalid or expired token")

type TokenClaims struct {
	UserID   uuid.UUID
	Email    string
	Username string
}

type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
	}
}

// Generate issues a signed HS256 token asserting the user's id, email and
// display username.
func (s *TokenService) Generate(user *models.User, username string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID.String(),
		"email":    user.Email,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(raw string) (*TokenClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["userId"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)

	return &TokenClaims{UserID: userID, Email: email, Username: username}, nil
}
