package handler

import (
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	checks map[string]func() error
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{checks: make(map[string]func() error)}
}

// AddCheck registers a named dependency probe. Probe failures degrade the
// report but never the status code; every dependency here is optional.
func (h *HealthHandler) AddCheck(name string, probe func() error) {
	h.checks[name] = probe
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	deps := make(map[string]string, len(h.checks))
	for name, probe := range h.checks {
		if err := probe(); err != nil {
			deps[name] = "unavailable"
			continue
		}
		deps[name] = "ok"
	}

	payload := map[string]interface{}{"status": "ok"}
	if len(deps) > 0 {
		payload["dependencies"] = deps
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, payload)
}
