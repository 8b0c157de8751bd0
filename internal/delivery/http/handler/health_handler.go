package handler

import (
	"context"

	"resume-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

// Health reports dependency status. The cache being down is not a failure,
// only the database is load-bearing.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	status := fiber.StatusOK
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			data["database"] = "down"
			status = fiber.StatusServiceUnavailable
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			data["cache"] = "down"
		}
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, response.MessageError, data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
