package routes

import "github.com/gofiber/fiber/v3"

// RegisterV1 mounts the candidate-facing API. Every route requires an
// authenticated candidate.
func RegisterV1(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	h.Match.RegisterRoutes(r)
	h.Recommendations.RegisterRoutes(r)
	h.Interviews.RegisterRoutes(r)
}
