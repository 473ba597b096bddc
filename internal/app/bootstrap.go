package app

import (
	"context"
	"fmt"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and HTTP app. The returned cleanup closes
// the database and cache.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() error {
		err := c.Close()
		_ = logger.Sync()
		return err
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger.Named("http")).Middleware())
	app.Use(middleware.Metrics())
	app.Use(middleware.NewErrorMiddleware(c.Logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.NewRegistry(routes.Handlers{
		Health:          handler.NewHealthHandler(c.DB, c.Cache),
		Match:           handler.NewMatchHandler(c.Matching),
		Recommendations: handler.NewJobRecommendationHandler(c.Recommendations),
		Interviews:      handler.NewInterviewHandler(c.Interviews),
	}, middleware.NewAuthMiddleware(c.JWT)).Register(app)
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
