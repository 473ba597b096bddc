package routes

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health          *handler.HealthHandler
	Match           *handler.MatchHandler
	Recommendations *handler.JobRecommendationHandler
	Interviews      *handler.InterviewHandler
}

type Registry struct {
	handlers Handlers
	auth     *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{handlers: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	r.handlers.Health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1", r.auth.Middleware()), r.handlers)
}
