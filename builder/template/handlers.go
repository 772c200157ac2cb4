package template

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct{}

func NewHandlers() *Handlers {
	return &Handlers{}
}

// RegisterRoutes mounts the template endpoints
func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Get("/api/v1/templates", h.ListTemplates)
}

// ListTemplates returns the template catalog
// GET /api/v1/templates
func (h *Handlers) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": Catalog(),
		"default":   DefaultName,
	})
}
