package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/validation"
	"jobmatch/internal/domain/interview"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc usecase.InterviewFeedbackUsecase
}

func NewInterviewHandler(uc usecase.InterviewFeedbackUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/interviews")
	grp.Post("/feedback", h.Feedback)
	grp.Post("/options", h.Options)
	grp.Post("/:interview_id/feedback", h.SessionFeedback)
}

func (h *InterviewHandler) Feedback(c fiber.Ctx) error {
	var req dto.InterviewFeedbackRequest
	if err := bindJSON(c, validation.InterviewFeedbackRequest, &req); err != nil {
		return err
	}

	fb, err := h.uc.Evaluate(c.Context(), usecase.EvaluateInput{
		Transcript: req.Transcript,
		Turns:      req.Turns,
		Options:    req.Options,
		Job:        req.Job,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fb)
}

func (h *InterviewHandler) Options(c fiber.Ctx) error {
	var req dto.InterviewOptionsRequest
	if err := bindJSON(c, validation.InterviewOptionsRequest, &req); err != nil {
		return err
	}

	opts := h.uc.BuildOptions(interview.AutoOptionsInput{Transcript: req.Transcript, Job: req.Job})
	return response.Success(c, fiber.StatusOK, response.MessageOK, opts)
}

func (h *InterviewHandler) SessionFeedback(c fiber.Ctx) error {
	interviewID, err := pathUUID(c, "interview_id")
	if err != nil {
		return err
	}

	var req dto.SessionFeedbackRequest
	if err := bindJSON(c, validation.SessionFeedbackRequest, &req); err != nil {
		return err
	}

	fb, err := h.uc.EvaluateSession(c.Context(), interviewID, req.Options)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fb)
}
