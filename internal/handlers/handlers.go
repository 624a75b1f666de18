package handlers

import (
	"log/slog"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// upstreamError logs the failure and returns a 500. The underlying message
// is only surfaced in development mode.
func upstreamError(c *fiber.Ctx, cfg *config.Config, err error, public string) error {
	slog.Error("upstream failure", "method", c.Method(), "path", c.Path(), "error", err.Error())
	message := public
	if cfg.Development() {
		message = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
