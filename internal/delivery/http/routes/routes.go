package routes

import (
	"prop-match/internal/delivery/http/handler"
	"prop-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	auth       *handler.AuthHandler
	shortlist  *handler.ShortlistHandler
	assignment *handler.AssignmentHandler
	authMw     *middleware.AuthMiddleware
}

func NewRegistry(auth *handler.AuthHandler, shortlist *handler.ShortlistHandler, assignment *handler.AssignmentHandler, authMw *middleware.AuthMiddleware) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(),
		auth:       auth,
		shortlist:  shortlist,
		assignment: assignment,
		authMw:     authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.auth.RegisterRoutes(v1)

	protected := v1.Group("", r.authMw.Middleware())
	r.shortlist.RegisterRoutes(protected)
	r.assignment.RegisterRoutes(protected)
}
