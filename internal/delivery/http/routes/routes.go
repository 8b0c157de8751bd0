package routes

import (
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Resumes       *handler.ResumeHandler
	Jobs          *handler.JobHandler
	Matching      *handler.MatchHandler
	Search        *handler.SearchHandler
	Notifications *handler.NotificationHandler
	Webhooks      *handler.WebhookHandler
	WS            *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

// Register wires every route. Everything under /api/v1 except /auth
// requires a valid access token.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	v1 := app.Group("/api").Group("/v1")

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	protected := v1.Group("", r.AuthMW.Middleware())

	if r.Users != nil {
		r.Users.RegisterRoutes(protected.Group("/users"))
	}
	if r.Resumes != nil {
		r.Resumes.RegisterRoutes(protected.Group("/resumes"))
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(protected.Group("/jobs"))
	}
	if r.Matching != nil {
		r.Matching.RegisterRoutes(protected.Group("/matching"))
	}
	if r.Search != nil {
		r.Search.RegisterRoutes(protected.Group("/search"))
	}
	if r.Notifications != nil {
		r.Notifications.RegisterRoutes(protected.Group("/notifications"))
	}
	if r.Webhooks != nil {
		r.Webhooks.RegisterRoutes(protected.Group("/webhooks"))
	}
	if r.WS != nil {
		protected.Get("/ws/notifications", r.WS.HandleNotificationsWS)
	}
}
