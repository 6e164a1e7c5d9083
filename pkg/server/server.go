// Package server exposes the recipe generator over HTTP: a small form UI
// plus a JSON API.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/lisadascse72/Recipe-generator/pkg/ai"
	"github.com/lisadascse72/Recipe-generator/pkg/config"
	"github.com/lisadascse72/Recipe-generator/pkg/history"
	"github.com/lisadascse72/Recipe-generator/pkg/logger"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	Client ai.LLMClient
	Store  history.Store
}

// New builds the Fiber app with all routes registered.
func New(cfg *config.Config, deps Deps) *fiber.App {
	log := logger.For("server")
	log.Info().
		Str("addr", cfg.ListenAddr()).
		Bool("cors", cfg.EnableCORS).
		Bool("xsrf_protection", cfg.EnableXSRF).
		Msg("initializing recipe server")

	app := fiber.New(fiber.Config{
		AppName:               "recipe-generator",
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(recover.New())

	if cfg.EnableCORS {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: "GET,POST,DELETE",
		}))
	}
	if cfg.EnableXSRF {
		app.Use(csrf.New())
	}

	pages := NewPageHandler()
	recipes := NewRecipeHandler(cfg, deps.Client, deps.Store)

	app.Get("/", pages.Index())
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/options", recipes.Options())
	api.Post("/recipes", recipes.Generate())
	api.Get("/recipes", recipes.List())
	api.Get("/recipes/:id", recipes.GetByID())
	api.Delete("/recipes/:id", recipes.Delete())

	return app
}
