package handlers

import (
	"errors"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/middleware"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	cfg       *config.Config
	favorites *services.FavoriteService
}

func NewFavoriteHandler(cfg *config.Config, favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{cfg: cfg, favorites: favorites}
}

// User handles GET /api/favorites/user.
func (h *FavoriteHandler) User(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	favorites, err := h.favorites.List(user.ID)
	if err != nil {
		return upstreamError(c, h.cfg, err, "Failed to list favorites")
	}

	return c.JSON(fiber.Map{"favorites": favorites})
}

// Add handles POST /api/favorites/add.
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	favorite, err := h.favorites.Add(user.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSongTitleRequired):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrAlreadyFavorited):
			return badRequest(c, err.Error())
		default:
			return upstreamError(c, h.cfg, err, "Failed to add favorite")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// Remove handles DELETE /api/favorites/remove. Idempotent.
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RemoveFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.favorites.Remove(user.ID, req.SongTitle); err != nil {
		if errors.Is(err, services.ErrSongTitleRequired) {
			return badRequest(c, err.Error())
		}
		return upstreamError(c, h.cfg, err, "Failed to remove favorite")
	}

	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}

// Check handles POST /api/favorites/check.
func (h *FavoriteHandler) Check(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CheckFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	return c.JSON(dto.CheckFavoriteResponse{
		IsFavorite: h.favorites.Check(user.ID, req.SongTitle),
	})
}

// Toggle handles POST /api/favorites/toggle.
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	action, favorite, err := h.favorites.Toggle(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSongTitleRequired) {
			return badRequest(c, err.Error())
		}
		return upstreamError(c, h.cfg, err, "Failed to toggle favorite")
	}

	resp := fiber.Map{
		"action":     action,
		"isFavorite": action == "added",
	}
	if favorite != nil {
		resp["favorite"] = favorite
	}
	return c.JSON(resp)
}

// Count handles GET /api/favorites/count.
func (h *FavoriteHandler) Count(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	count, err := h.favorites.Count(user.ID)
	if err != nil {
		return upstreamError(c, h.cfg, err, "Failed to count favorites")
	}

	return c.JSON(dto.CountFavoritesResponse{Count: count})
}
