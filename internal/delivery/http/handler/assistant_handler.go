package handler

import (
	"strings"

	"talent-match/internal/ai"
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AssistantHandler serves the LLM-routed conversational endpoint. The
// advisor is nil when no API key is configured; the endpoint then reports
// itself unavailable while the deterministic routes keep working.
type AssistantHandler struct {
	advisor *ai.Advisor
}

func NewAssistantHandler(advisor *ai.Advisor) *AssistantHandler {
	return &AssistantHandler{advisor: advisor}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chatbot/assistant/query", h.Query)
}

func (h *AssistantHandler) Query(c fiber.Ctx) error {
	if h.advisor == nil {
		return response.Error(c, fiber.StatusServiceUnavailable,
			"Assistant is not configured", nil)
	}

	var req dto.AssistantQueryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "query is required", nil, nil)
	}

	res, err := h.advisor.ProcessQuery(c.Context(), req.UserRole, req.Query, req.EmployeeID)
	if err != nil {
		return mapQueryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAssistantResponse(res))
}
