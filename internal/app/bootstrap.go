package app

import (
	"context"
	"fmt"
	"strings"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/logger"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app and its routes. The returned
// cleanup closes every infrastructure handle the container opened.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	container, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(log)
	accessMw := middleware.NewAccessLogMiddleware(log)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(
		buildHealthHandler(container),
		handler.NewChatbotHandler(container.EmployeeSearch, container.StaffingSearch),
		handler.NewAssistantHandler(container.Advisor),
	)
	registry.Register(f)

	cleanup := func() error {
		err := container.Close()
		_ = log.Sync()
		return err
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func buildHealthHandler(container *Container) *handler.HealthHandler {
	health := handler.NewHealthHandler()
	if container.Cache != nil {
		health.AddCheck("cache", func() error {
			return container.Cache.Ping(context.Background())
		})
	}
	return health
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
