package handlers

import (
	"errors"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AlbumHandler struct {
	cfg     *config.Config
	catalog *services.CatalogService
}

func NewAlbumHandler(cfg *config.Config, catalog *services.CatalogService) *AlbumHandler {
	return &AlbumHandler{cfg: cfg, catalog: catalog}
}

func (h *AlbumHandler) List(c *fiber.Ctx) error {
	albums, err := h.catalog.ListAlbums()
	if err != nil {
		return upstreamError(c, h.cfg, err, "Failed to list albums")
	}
	return c.JSON(albums)
}

func (h *AlbumHandler) Get(c *fiber.Ctx) error {
	album, err := h.catalog.GetAlbum(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAlbumNotFound) {
			return notFound(c, "Album not found")
		}
		return upstreamError(c, h.cfg, err, "Failed to load album")
	}
	return c.JSON(album)
}
