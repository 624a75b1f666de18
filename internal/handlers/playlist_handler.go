package handlers

import (
	"errors"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/dto"
	"github.com/ekinolcay/tunewave-backend/internal/middleware"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PlaylistHandler struct {
	cfg       *config.Config
	playlists *services.PlaylistService
}

func NewPlaylistHandler(cfg *config.Config, playlists *services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{cfg: cfg, playlists: playlists}
}

// playlistID parses the :id param. A malformed id behaves like a missing
// playlist so ids are never confirmable.
func playlistID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *PlaylistHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrPlaylistNotFound):
		return notFound(c, "Playlist not found")
	case errors.Is(err, services.ErrPlaylistNameRequired),
		errors.Is(err, services.ErrPlaylistNameTaken),
		errors.Is(err, services.ErrNoSongsProvided),
		errors.Is(err, services.ErrAllSongsExist),
		errors.Is(err, services.ErrSongTitleRequired):
		return badRequest(c, err.Error())
	default:
		return upstreamError(c, h.cfg, err, fallback)
	}
}

// User handles GET /api/playlists/user — playlists with nested songs.
func (h *PlaylistHandler) User(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	playlists, err := h.playlists.ListWithSongs(user.ID)
	if err != nil {
		return upstreamError(c, h.cfg, err, "Failed to list playlists")
	}

	return c.JSON(fiber.Map{"playlists": playlists})
}

// Create handles POST /api/playlists/create.
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	playlist, err := h.playlists.Create(user.ID, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create playlist")
	}

	return c.Status(fiber.StatusCreated).JSON(playlist)
}

// Update handles PUT /api/playlists/:id — partial update.
func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := playlistID(c)
	if err != nil {
		return notFound(c, "Playlist not found")
	}

	var req dto.UpdatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	playlist, err := h.playlists.Update(user.ID, id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update playlist")
	}

	return c.JSON(playlist)
}

// Delete handles DELETE /api/playlists/:id.
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := playlistID(c)
	if err != nil {
		return notFound(c, "Playlist not found")
	}

	if err := h.playlists.Delete(user.ID, id); err != nil {
		return h.mapError(c, err, "Failed to delete playlist")
	}

	return c.JSON(fiber.Map{"message": "Playlist deleted"})
}

// GetSongs handles GET /api/playlists/:id/songs.
func (h *PlaylistHandler) GetSongs(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := playlistID(c)
	if err != nil {
		return notFound(c, "Playlist not found")
	}

	songs, err := h.playlists.GetSongs(user.ID, id)
	if err != nil {
		return h.mapError(c, err, "Failed to load playlist songs")
	}

	return c.JSON(fiber.Map{"songs": songs})
}

// AddSongs handles POST /api/playlists/:id/songs/add.
func (h *PlaylistHandler) AddSongs(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := playlistID(c)
	if err != nil {
		return notFound(c, "Playlist not found")
	}

	var req dto.AddSongsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	added, err := h.playlists.AddSongs(user.ID, id, req.Songs)
	if err != nil {
		return h.mapError(c, err, "Failed to add songs")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"songs": added})
}

// RemoveSong handles DELETE /api/playlists/:id/songs/remove. Idempotent.
func (h *PlaylistHandler) RemoveSong(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := playlistID(c)
	if err != nil {
		return notFound(c, "Playlist not found")
	}

	var req dto.RemoveSongRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.playlists.RemoveSong(user.ID, id, req.SongTitle); err != nil {
		return h.mapError(c, err, "Failed to remove song")
	}

	return c.JSON(fiber.Map{"message": "Song removed from playlist"})
}

// RemoveSongs handles DELETE /api/playlists/:id/songs/remove-multiple.
func (h *PlaylistHandler) RemoveSongs(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := playlistID(c)
	if err != nil {
		return notFound(c, "Playlist not found")
	}

	var req dto.RemoveSongsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.playlists.RemoveSongs(user.ID, id, req.SongTitles); err != nil {
		return h.mapError(c, err, "Failed to remove songs")
	}

	return c.JSON(fiber.Map{"message": "Songs removed from playlist"})
}
