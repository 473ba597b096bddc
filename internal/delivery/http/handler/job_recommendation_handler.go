package handler

import (
	"strconv"
	"strings"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candID, err := candidateID(c)
	if err != nil {
		return err
	}

	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	refresh, err := parseQueryBool(c, "refresh")
	if err != nil {
		return err
	}

	items, err := h.uc.GetRecommendations(c.Context(), candID, usecase.JobRecommendationParams{
		Limit:   limit,
		Refresh: refresh,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendationsResponse{
		Count: len(items),
		Items: items,
	})
}

func parseQueryInt(c fiber.Ctx, key string, def int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return v, nil
}

func parseQueryBool(c fiber.Ctx, key string) (bool, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return v, nil
}
