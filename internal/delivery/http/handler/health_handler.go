package handler

import (
	"context"
	"time"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

const (
	statusUp   = "up"
	statusDown = "down"
)

// HealthHandler reports dependency status. The database is required; a
// missing cache only degrades the service.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := dto.HealthResponse{Database: ping(ctx, h.db), Cache: ping(ctx, h.cache)}
	if out.Database != statusUp {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return statusDown
	}
	if err := p.Ping(ctx); err != nil {
		return statusDown
	}
	return statusUp
}
