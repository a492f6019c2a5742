package handler

import (
	"log/slog"
	"net/http"

	"soko/internal/delivery/api/response"
	"soko/internal/domain/entity"
	"soko/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EnrichmentHandlerParams holds dependencies for EnrichmentHandler, injected by Fx.
type EnrichmentHandlerParams struct {
	fx.In

	EnrichmentUC usecase.EnrichmentUsecase
	TagJobUC     usecase.TagJobUsecase
	Logger       *slog.Logger
}

// EnrichmentHandler serves the /ai endpoints.
type EnrichmentHandler struct {
	enrichmentUC usecase.EnrichmentUsecase
	tagJobUC     usecase.TagJobUsecase
	logger       *slog.Logger
}

// NewEnrichmentHandler is the constructor for EnrichmentHandler
func NewEnrichmentHandler(params EnrichmentHandlerParams) *EnrichmentHandler {
	return &EnrichmentHandler{
		enrichmentUC: params.EnrichmentUC,
		tagJobUC:     params.TagJobUC,
		logger:       params.Logger,
	}
}

// TextRequest is the body of every /ai endpoint.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

type serviceMatchResponse struct {
	serviceResponse
	Score float64 `json:"score"`
}

// SubmitTags handles POST /ai/tags. The job id is returned at once; tags are
// fetched from GetTags.
func (h *EnrichmentHandler) SubmitTags(c echo.Context) error {
	var req TextRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	jobID, err := h.tagJobUC.SubmitTagJob(c.Request().Context(), req.Text, nil)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"task_id": jobID})
}

// GetTags handles GET /ai/tags/:taskId. A running job answers 202.
func (h *EnrichmentHandler) GetTags(c echo.Context) error {
	job, err := h.tagJobUC.GetTagJob(c.Request().Context(), c.Param("taskId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if job.Status != entity.TagJobCompleted {
		return response.Success(c, http.StatusAccepted, map[string]string{"status": string(entity.TagJobProcessing)})
	}

	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}

	return response.Success(c, http.StatusOK, map[string][]string{"tags": tags})
}

// EnhanceDescription handles POST /ai/enhance-description
func (h *EnrichmentHandler) EnhanceDescription(c echo.Context) error {
	var req TextRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	enhanced := h.enrichmentUC.EnhanceDescription(c.Request().Context(), req.Text)

	return response.Success(c, http.StatusOK, map[string]string{"enhanced_text": enhanced})
}

// SuggestServices handles POST /ai/service-suggestions
func (h *EnrichmentHandler) SuggestServices(c echo.Context) error {
	var req TextRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	suggestions, err := h.enrichmentUC.SuggestServices(c.Request().Context(), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return response.Success(c, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// MatchServices handles POST /ai/match-services?lat=&lng=&radius=
func (h *EnrichmentHandler) MatchServices(c echo.Context) error {
	var req TextRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.enrichmentUC.MatchServices(c.Request().Context(), req.Text, searchInput(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]serviceMatchResponse, 0, len(matches))
	for _, m := range matches {
		results = append(results, serviceMatchResponse{
			serviceResponse: presentService(m.Service, m.DistanceMeters),
			Score:           m.Score,
		})
	}

	return response.Success(c, http.StatusOK, results)
}
