package app

import (
	"fmt"
	"strings"

	"prop-match/internal/config"
	"prop-match/internal/delivery/http/handler"
	"prop-match/internal/delivery/http/middleware"
	"prop-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.AccessLog())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	registry := routes.NewRegistry(
		handler.NewAuthHandler(container.Auth),
		handler.NewShortlistHandler(container.Ranking),
		handler.NewAssignmentHandler(container.Finalize),
		middleware.NewAuthMiddleware(container.JWT),
	)
	registry.Register(f)

	cleanup := func() error { return container.Close() }
	return &App{Fiber: f, Container: container}, cleanup, nil
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
