package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	mockusecase "soko/internal/mocks/usecase"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEnrichmentHandler(t *testing.T) (*EnrichmentHandler, *mockusecase.MockEnrichmentUsecase, *mockusecase.MockTagJobUsecase) {
	enrichment := mockusecase.NewMockEnrichmentUsecase(t)
	jobs := mockusecase.NewMockTagJobUsecase(t)

	return NewEnrichmentHandler(EnrichmentHandlerParams{
		EnrichmentUC: enrichment,
		TagJobUC:     jobs,
		Logger:       testLogger(),
	}), enrichment, jobs
}

func TestEnrichmentHandler_SubmitTags(t *testing.T) {
	t.Run("accepted with a task id", func(t *testing.T) {
		h, _, jobs := newEnrichmentHandler(t)
		jobs.EXPECT().SubmitTagJob(mock.Anything, "arduino uno board", (*uuid.UUID)(nil)).Return("job-1", nil)

		c, rec := newContext(http.MethodPost, "/api/v1/ai/tags", `{"text":"arduino uno board"}`)

		require.NoError(t, h.SubmitTags(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "job-1", body["task_id"])
	})

	t.Run("text too long", func(t *testing.T) {
		h, _, jobs := newEnrichmentHandler(t)
		jobs.EXPECT().SubmitTagJob(mock.Anything, mock.Anything, mock.Anything).Return("", domainerrors.ErrTextTooLong)

		c, rec := newContext(http.MethodPost, "/api/v1/ai/tags", `{"text":"x"}`)

		require.NoError(t, h.SubmitTags(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "TEXT_TOO_LONG", decode(t, rec).Error.Code)
	})

	t.Run("empty text", func(t *testing.T) {
		h, _, _ := newEnrichmentHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/ai/tags", `{"text":""}`)

		require.NoError(t, h.SubmitTags(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEnrichmentHandler_GetTags(t *testing.T) {
	tests := []struct {
		name   string
		job    *entity.TagJob
		err    error
		status int
		body   string
	}{
		{
			name:   "still processing",
			job:    &entity.TagJob{ID: "job-1", Status: entity.TagJobProcessing},
			status: http.StatusAccepted,
			body:   `{"status":"processing"}`,
		},
		{
			name:   "completed",
			job:    &entity.TagJob{ID: "job-1", Status: entity.TagJobCompleted, Tags: []string{"arduino", "kit"}},
			status: http.StatusOK,
			body:   `{"tags":["arduino","kit"]}`,
		},
		{
			name:   "completed without labels",
			job:    &entity.TagJob{ID: "job-1", Status: entity.TagJobCompleted},
			status: http.StatusOK,
			body:   `{"tags":[]}`,
		},
		{
			name:   "unknown job",
			err:    domainerrors.ErrJobNotFound,
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, jobs := newEnrichmentHandler(t)
			jobs.EXPECT().GetTagJob(mock.Anything, "job-1").Return(tt.job, tt.err)

			c, rec := newContext(http.MethodGet, "/", "")
			c.SetParamNames("taskId")
			c.SetParamValues("job-1")

			require.NoError(t, h.GetTags(c))
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, string(decode(t, rec).Data))
			}
		})
	}
}

func TestEnrichmentHandler_TextHelpers(t *testing.T) {
	t.Run("enhance description", func(t *testing.T) {
		h, enrichment, _ := newEnrichmentHandler(t)
		enrichment.EXPECT().EnhanceDescription(mock.Anything, "fix pumps").Return("We repair water pumps.")

		c, rec := newContext(http.MethodPost, "/", `{"text":"fix pumps"}`)

		require.NoError(t, h.EnhanceDescription(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"enhanced_text":"We repair water pumps."}`, string(decode(t, rec).Data))
	})

	t.Run("suggestions never render null", func(t *testing.T) {
		h, enrichment, _ := newEnrichmentHandler(t)
		enrichment.EXPECT().SuggestServices(mock.Anything, "plumbing").Return(nil, nil)

		c, rec := newContext(http.MethodPost, "/", `{"text":"plumbing"}`)

		require.NoError(t, h.SuggestServices(c))
		assert.JSONEq(t, `{"suggestions":[]}`, string(decode(t, rec).Data))
	})

	t.Run("matches carry score and distance", func(t *testing.T) {
		h, enrichment, _ := newEnrichmentHandler(t)
		svc := &entity.Service{ID: uuid.Must(uuid.NewV7()), Title: "Pump repair", Location: entity.GeoPoint{Lon: 36.8, Lat: -1.3}}

		enrichment.EXPECT().MatchServices(mock.Anything, "my pump leaks", mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Params.Lat == "-1.3" && in.Params.Lng == "36.8"
		})).Return([]usecase.ServiceMatch{{Service: svc, DistanceMeters: ptr(120.5), Score: 0.8}}, nil)

		c, rec := newContext(http.MethodPost, "/api/v1/ai/match-services?lat=-1.3&lng=36.8", `{"text":"my pump leaks"}`)

		require.NoError(t, h.MatchServices(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var results []map[string]any
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &results))
		require.Len(t, results, 1)
		assert.Equal(t, "Pump repair", results[0]["title"])
		assert.InDelta(t, 0.8, results[0]["score"], 1e-9)
		assert.InDelta(t, 120.5, results[0]["distance"], 1e-9)
	})
}
