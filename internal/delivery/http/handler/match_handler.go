package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/validation"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Score)
	r.Post("/match/suggestions", h.Suggestions)
	r.Post("/match/batch", h.Batch)
	r.Get("/jobs/:job_id/match", h.GetMatch)
}

// Score matches a caller-supplied profile against a caller-supplied job.
func (h *MatchHandler) Score(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := bindJSON(c, validation.MatchRequest, &req); err != nil {
		return err
	}

	res := h.uc.Score(req.Candidate, req.Job)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{MatchResult: res})
}

func (h *MatchHandler) Suggestions(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := bindJSON(c, validation.MatchRequest, &req); err != nil {
		return err
	}

	res := h.uc.Score(req.Candidate, req.Job)
	tips := h.uc.Suggest(res, matching.SuggestionContext{
		JobTitle:      req.Job.Title,
		IsRemote:      req.Job.IsRemote,
		ProjectCount:  len(req.Candidate.Projects),
		RequiredLevel: res.Details.RequiredLevel,
	})
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SuggestionsResponse{
		MatchScore:  res.MatchScore,
		Suggestions: tips,
	})
}

// Batch scores one profile against up to fifty postings. Items keep the
// request order.
func (h *MatchHandler) Batch(c fiber.Ctx) error {
	var req dto.BatchMatchRequest
	if err := bindJSON(c, validation.BatchMatchRequest, &req); err != nil {
		return err
	}

	results, err := h.uc.ScoreBatch(c.Context(), req.Candidate, req.Jobs)
	if err != nil {
		return mapUsecaseError(err)
	}

	items := make([]dto.BatchMatchItem, 0, len(results))
	for i, res := range results {
		item := dto.BatchMatchItem{Index: i, Title: req.Jobs[i].Title, MatchResult: res}
		if id := req.Jobs[i].ID; id != uuid.Nil {
			item.JobID = &id
		}
		items = append(items, item)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.BatchMatchResponse{
		Count: len(items),
		Items: items,
	})
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	candID, err := candidateID(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "job_id")
	if err != nil {
		return err
	}

	res, err := h.uc.CalculateMatch(c.Context(), candID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{
		CandidateID: &candID,
		JobID:       &jobID,
		MatchResult: res,
	})
}
