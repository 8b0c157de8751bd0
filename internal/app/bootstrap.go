package app

import (
	"fmt"
	"log"
	"strings"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(log.Default())
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := &routes.Registry{
		Health:        handler.NewHealthHandler(c.DB, c.Cache),
		Auth:          handler.NewAuthHandler(c.Auth),
		Users:         handler.NewUserHandler(c.Users),
		Resumes:       handler.NewResumeHandler(c.Resumes),
		Jobs:          handler.NewJobHandler(c.Jobs),
		Matching:      handler.NewMatchHandler(c.Matching, c.Recommendations),
		Search:        handler.NewSearchHandler(c.Search),
		Notifications: handler.NewNotificationHandler(c.Notifications),
		Webhooks:      handler.NewWebhookHandler(c.Webhooks),
		WS:            ws.NewHandler(c.Hub, log.Default()),
		AuthMW:        middleware.NewAuthMiddleware(c.JWT),
	}
	registry.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
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
