package handlers

import (
	"errors"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/middleware"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	cfg     *config.Config
	history *services.HistoryService
}

func NewHistoryHandler(cfg *config.Config, history *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{cfg: cfg, history: history}
}

// Record handles POST /api/history/record.
func (h *HistoryHandler) Record(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RecordHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.history.Record(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSongTitleRequired) {
			return badRequest(c, err.Error())
		}
		return upstreamError(c, h.cfg, err, "Failed to record history")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List handles GET /api/history/user.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	entries, err := h.history.ListRecent(user.ID, c.QueryInt("limit", 0))
	if err != nil {
		return upstreamError(c, h.cfg, err, "Failed to list history")
	}

	return c.JSON(fiber.Map{"history": entries})
}
