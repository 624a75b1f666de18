package routes

import (
	"time"

	"github.com/ekinolcay/tunewave-backend/internal/config"
	"github.com/ekinolcay/tunewave-backend/internal/handlers"
	"github.com/ekinolcay/tunewave-backend/internal/middleware"
	"github.com/ekinolcay/tunewave-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	identity *services.IdentityService,
	profiles *services.ProfileService,
	userHandler *handlers.UserHandler,
	albumHandler *handlers.AlbumHandler,
	favoriteHandler *handlers.FavoriteHandler,
	playlistHandler *handlers.PlaylistHandler,
	historyHandler *handlers.HistoryHandler,
	healthHandler *handlers.HealthHandler,
) {
	protected := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.ResolveIdentity(identity, profiles),
	}

	app.Get("/health", healthHandler.Check)

	// Catalog — public
	app.Get("/albums", albumHandler.List)
	app.Get("/albums/:id", albumHandler.Get)

	users := app.Group("/users")

	// Credential endpoints get a stricter per-IP limit.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	users.Post("/insert", authLimiter, userHandler.Insert)
	users.Post("/signin", authLimiter, userHandler.Signin)
	users.Post("/getusername", userHandler.GetUsername)

	users.Get("/profile/:username", append(protected, userHandler.GetProfile)...)
	users.Put("/update/:username", append(protected, userHandler.UpdateProfile)...)
	users.Post("/profile-picture/:username", append(protected, userHandler.UploadProfilePicture)...)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	favorites := api.Group("/favorites", protected...)
	favorites.Get("/user", favoriteHandler.User)
	favorites.Post("/add", favoriteHandler.Add)
	favorites.Delete("/remove", favoriteHandler.Remove)
	favorites.Post("/check", favoriteHandler.Check)
	favorites.Post("/toggle", favoriteHandler.Toggle)
	favorites.Get("/count", favoriteHandler.Count)

	playlists := api.Group("/playlists", protected...)
	playlists.Get("/user", playlistHandler.User)
	playlists.Post("/create", playlistHandler.Create)
	playlists.Put("/:id", playlistHandler.Update)
	playlists.Delete("/:id", playlistHandler.Delete)
	playlists.Get("/:id/songs", playlistHandler.GetSongs)
	playlists.Post("/:id/songs/add", playlistHandler.AddSongs)
	playlists.Delete("/:id/songs/remove", playlistHandler.RemoveSong)
	playlists.Delete("/:id/songs/remove-multiple", playlistHandler.RemoveSongs)

	history := api.Group("/history", protected...)
	history.Post("/record", historyHandler.Record)
	history.Get("/user", historyHandler.List)
}
