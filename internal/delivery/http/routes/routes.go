package routes

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	chatbot   *handler.ChatbotHandler
	assistant *handler.AssistantHandler
}

func NewRegistry(health *handler.HealthHandler, chatbot *handler.ChatbotHandler, assistant *handler.AssistantHandler) *Registry {
	return &Registry{health: health, chatbot: chatbot, assistant: assistant}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.chatbot.RegisterRoutes(api)
	r.assistant.RegisterRoutes(api)
}
