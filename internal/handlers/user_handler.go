package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/middleware"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxProfilePictureSize = 5 * 1024 * 1024

type UserHandler struct {
	cfg      *config.Config
	identity *services.IdentityService
	profiles *services.ProfileService
	tokens   *services.TokenService
}

func NewUserHandler(cfg *config.Config, identity *services.IdentityService, profiles *services.ProfileService, tokens *services.TokenService) *UserHandler {
	return &UserHandler{cfg: cfg, identity: identity, profiles: profiles, tokens: tokens}
}

// Insert handles POST /users/insert. The web client expects a
// "<code>::<message>" string body rather than JSON.
func (h *UserHandler) Insert(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("400::Invalid request body")
	}

	user, err := h.identity.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).SendString("400::Email already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).SendString("400::" + err.Error())
		default:
			slog.Error("registration failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString("500::Registration failed")
		}
	}

	// Profile provisioning is best effort; a missing profile is recreated
	// lazily on the first authenticated request.
	if _, err := h.profiles.EnsureProfile(user, req.Username); err != nil {
		slog.Error("profile provisioning failed", "error", err, "user_id", user.ID.String())
	}

	return c.SendString("200::Registration successful")
}

// Signin handles POST /users/signin and returns "200::<token>" on success.
func (h *UserHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("400::Invalid request body")
	}

	user, err := h.identity.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).SendString("401::Invalid email or password")
		}
		slog.Error("signin failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("500::Signin failed")
	}

	profile, err := h.profiles.EnsureProfile(user, "")
	if err != nil {
		slog.Error("profile provisioning failed", "error", err, "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).SendString("500::Signin failed")
	}

	token, err := h.tokens.Generate(user, profile.Username)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("500::Signin failed")
	}

	return c.SendString("200::" + token)
}

// GetUsername handles POST /users/getusername. The token arrives in the
// body; the response is the bare username as plain text. The profile is
// auto-provisioned when missing.
func (h *UserHandler) GetUsername(c *fiber.Ctx) error {
	var req dto.GetUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	claims, err := h.tokens.Verify(req.Csrid)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized: invalid or expired token",
		})
	}

	user, err := h.identity.FetchByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized: invalid or expired token",
		})
	}

	profile, err := h.profiles.EnsureProfile(user, claims.Username)
	if err != nil {
		return upstreamError(c, h.cfg, err, "Failed to resolve username")
	}

	return c.SendString(profile.Username)
}

// GetProfile handles GET /users/profile/:username.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetByUsername(c.Params("username"))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return notFound(c, "Profile not found")
		}
		return upstreamError(c, h.cfg, err, "Failed to load profile")
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /users/update/:username. Partial update; email
// and password changes go through the identity service.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profiles.Update(user.ID, c.Params("username"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return notFound(c, "Profile not found")
		case errors.Is(err, services.ErrNotProfileOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUsernameRequired),
			errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrWeakPassword):
			return badRequest(c, err.Error())
		default:
			return upstreamError(c, h.cfg, err, "Failed to update profile")
		}
	}

	return c.JSON(profile)
}

// UploadProfilePicture handles POST /users/profile-picture/:username with a
// multipart "image" field. 5MB cap, image types only.
func (h *UserHandler) UploadProfilePicture(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "Image file is required")
	}

	if file.Size > maxProfilePictureSize {
		return badRequest(c, "Image size must be less than 5MB")
	}

	contentType := file.Header.Get("Content-Type")
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	if !validTypes[contentType] {
		return badRequest(c, "Invalid image format. Only JPEG, PNG, WEBP and GIF are allowed")
	}

	fileExt := filepath.Ext(file.Filename)
	if fileExt == "" {
		fileExt = ".jpg"
	}
	filename := fmt.Sprintf("%s_%s%s", user.ID.String()[:8], uuid.New().String()[:8], fileExt)

	uploadDir := filepath.Join(h.cfg.UploadDir, "avatars")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return upstreamError(c, h.cfg, err, "Failed to save image")
	}
	savePath := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return upstreamError(c, h.cfg, err, "Failed to save image")
	}

	pictureURL := "/uploads/avatars/" + filename

	profile, err := h.profiles.SetProfilePicture(user.ID, c.Params("username"), pictureURL)
	if err != nil {
		os.Remove(savePath)
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return notFound(c, "Profile not found")
		case errors.Is(err, services.ErrNotProfileOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return upstreamError(c, h.cfg, err, "Failed to update profile picture")
		}
	}

	return c.JSON(profile)
}
