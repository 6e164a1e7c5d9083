package server

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lisadascse72/Recipe-generator/pkg/ai"
	"github.com/lisadascse72/Recipe-generator/pkg/config"
	"github.com/lisadascse72/Recipe-generator/pkg/errors"
	"github.com/lisadascse72/Recipe-generator/pkg/history"
	"github.com/lisadascse72/Recipe-generator/pkg/logger"
	"github.com/lisadascse72/Recipe-generator/pkg/prompt"
	"github.com/lisadascse72/Recipe-generator/pkg/recipe"
	"github.com/lisadascse72/Recipe-generator/pkg/retry"
)

// RecipeHandler serves the generation API.
type RecipeHandler struct {
	cfg    *config.Config
	client ai.LLMClient
	store  history.Store
	policy retry.Policy
}

func NewRecipeHandler(cfg *config.Config, client ai.LLMClient, store history.Store) *RecipeHandler {
	return &RecipeHandler{
		cfg:    cfg,
		client: client,
		store:  store,
		policy: retry.DefaultPolicy(),
	}
}

// Options returns the option catalogs and form defaults.
func (h *RecipeHandler) Options() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(recipe.Catalog())
	}
}

// Generate validates the preferences, builds the chef prompt, asks the
// model for meal recommendations and persists the result.
func (h *RecipeHandler) Generate() fiber.Handler {
	log := logger.For("server")

	return func(c *fiber.Ctx) error {
		if h.client == nil {
			return errorJSON(c, fiber.StatusServiceUnavailable,
				errors.New(errors.CodeNotConfigured, "server", "model client is not configured", nil))
		}

		var prefs recipe.Preferences
		if err := c.BodyParser(&prefs); err != nil {
			return errorJSON(c, fiber.StatusBadRequest,
				errors.New(errors.CodeValidationFailed, "server", "malformed request body", err))
		}
		if err := prefs.Validate(); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, err)
		}

		promptText, err := prompt.BuildRecipePrompt(prefs)
		if err != nil {
			return errorJSON(c, fiber.StatusInternalServerError,
				errors.New(errors.CodeInternalError, "server", "building prompt", err))
		}

		ctx, cancel := context.WithTimeout(c.Context(), h.cfg.RequestTimeout)
		defer cancel()

		var recipes string
		var usage ai.TokenUsage
		err = retry.Do(ctx, "chat completion", h.policy, func(ctx context.Context) error {
			var callErr error
			recipes, usage, callErr = h.client.GetChatCompletionStream(ctx, promptText)
			return callErr
		})
		if err != nil {
			log.Error().Err(err).Msg("recipe generation failed")
			return errorJSON(c, fiber.StatusBadGateway, err)
		}

		gen := recipe.Generation{
			ID:          uuid.NewString(),
			Preferences: prefs,
			Prompt:      promptText,
			Recipes:     recipes,
			Model:       h.client.Model(),
			Usage: recipe.Usage{
				PromptTokens:     usage.PromptTokens,
				CompletionTokens: usage.CompletionTokens,
				TotalTokens:      usage.TotalTokens,
			},
			CreatedAt: time.Now().UTC(),
		}

		// History is best effort; a persistence hiccup must not cost the
		// user their recipes.
		if h.store != nil {
			if err := h.store.Save(c.Context(), gen); err != nil {
				log.Warn().Err(err).Str("generation_id", gen.ID).Msg("failed to persist generation")
			}
		}

		log.Info().
			Str("generation_id", gen.ID).
			Str("cuisine", prefs.Cuisine).
			Int32("total_tokens", gen.Usage.TotalTokens).
			Msg("recipes generated")

		return c.Status(fiber.StatusCreated).JSON(gen)
	}
}

// List returns recent generations, newest first.
func (h *RecipeHandler) List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h.store == nil {
			return errorJSON(c, fiber.StatusServiceUnavailable,
				errors.New(errors.CodeNotConfigured, "server", "history store is not configured", nil))
		}

		limit := h.cfg.HistoryLimit
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n < limit {
				limit = n
			}
		}

		gens, err := h.store.Recent(c.Context(), limit)
		if err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, err)
		}
		if gens == nil {
			gens = []recipe.Generation{}
		}

		return c.JSON(fiber.Map{"generations": gens})
	}
}

// GetByID returns a single stored generation.
func (h *RecipeHandler) GetByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h.store == nil {
			return errorJSON(c, fiber.StatusServiceUnavailable,
				errors.New(errors.CodeNotConfigured, "server", "history store is not configured", nil))
		}

		gen, err := h.store.Get(c.Context(), c.Params("id"))
		if err != nil {
			if errors.CodeOf(err) == errors.CodeNotFound {
				return errorJSON(c, fiber.StatusNotFound, err)
			}
			return errorJSON(c, fiber.StatusInternalServerError, err)
		}

		return c.JSON(gen)
	}
}

// Delete removes a stored generation.
func (h *RecipeHandler) Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h.store == nil {
			return errorJSON(c, fiber.StatusServiceUnavailable,
				errors.New(errors.CodeNotConfigured, "server", "history store is not configured", nil))
		}

		if err := h.store.Delete(c.Context(), c.Params("id")); err != nil {
			if errors.CodeOf(err) == errors.CodeNotFound {
				return errorJSON(c, fiber.StatusNotFound, err)
			}
			return errorJSON(c, fiber.StatusInternalServerError, err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func errorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"code":  string(errors.CodeOf(err)),
	})
}
