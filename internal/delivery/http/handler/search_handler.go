package handler

import (
	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/resumes", h.SearchResumes)
	r.Get("/jobs", h.SearchJobs)
}

func (h *SearchHandler) SearchResumes(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	hits, total, err := h.uc.SearchResumes(c.Context(), usecase.SearchResumesInput{
		Query:  c.Query("q"),
		Skills: parseCSVQuery(c, "skills"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Paginated(c, response.MessageOK, dto.FromResumeSearchHits(hits), total, limit, offset)
}

func (h *SearchHandler) SearchJobs(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	hits, total, err := h.uc.SearchJobs(c.Context(), usecase.SearchJobsInput{
		Query:    c.Query("q"),
		Stack:    parseCSVQuery(c, "stack"),
		Level:    c.Query("level"),
		Location: c.Query("location"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Paginated(c, response.MessageOK, dto.FromJobSearchHits(hits), total, limit, offset)
}
