package server

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/lisadascse72/Recipe-generator/pkg/recipe"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageHandler renders the HTML form UI.
type PageHandler struct {
	tmpl *template.Template
}

func NewPageHandler() *PageHandler {
	return &PageHandler{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Index serves the recipe form.
func (h *PageHandler) Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		data := struct {
			Options  recipe.Options
			Defaults recipe.Defaults
		}{
			Options:  recipe.Catalog(),
			Defaults: recipe.Catalog().Defaults,
		}
		if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "rendering page")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
}
