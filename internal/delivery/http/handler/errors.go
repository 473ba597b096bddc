package handler

import (
	"bytes"
	"errors"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/validation"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInterviewNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Interview not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// bindJSON validates the raw body against schema and decodes it into out.
// An empty body is accepted when the schema allows it.
func bindJSON(c fiber.Ctx, schema *validation.Schema, out any) error {
	body := c.Body()
	if err := schema.Validate(body); err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := c.Bind().JSON(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return nil
}

func candidateID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.CandidateID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func pathUUID(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}
