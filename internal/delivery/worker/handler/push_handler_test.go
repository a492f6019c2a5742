package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"soko/config"
	deliverycontext "soko/internal/delivery/context"
	"soko/internal/domain/constants"
	"soko/internal/domain/service"
	"soko/internal/infra/pubsub"
	mockservice "soko/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobProcessor_Process(t *testing.T) {
	event := &service.TagJobEvent{RequestID: "req-payload", JobID: "job-1", Text: "arduino uno"}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name      string
		data      []byte
		requestID string
		runErr    error
		wantRun   bool
		wantTrace string
		want      Outcome
	}{
		{
			name: "malformed payload is dropped",
			data: []byte("{not json"),
			want: OutcomeDropped,
		},
		{
			name:      "success",
			data:      payload,
			wantRun:   true,
			wantTrace: "req-payload",
			want:      OutcomeDone,
		},
		{
			name:      "transport request id wins",
			data:      payload,
			requestID: "req-transport",
			wantRun:   true,
			wantTrace: "req-transport",
			want:      OutcomeDone,
		},
		{
			name:    "retryable failure",
			data:    payload,
			runErr:  service.NewRetryableError(errors.New("inference unavailable")),
			wantRun: true,
			want:    OutcomeRetry,
		},
		{
			name:    "permanent failure is dropped",
			data:    payload,
			runErr:  errors.New("text rejected"),
			wantRun: true,
			want:    OutcomeDropped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mockservice.NewMockTagJobRunner(t)
			if tt.wantRun {
				runner.EXPECT().
					RunTagJob(mock.Anything, mock.MatchedBy(func(e *service.TagJobEvent) bool { return e.JobID == "job-1" })).
					RunAndReturn(func(ctx context.Context, _ *service.TagJobEvent) error {
						if tt.wantTrace != "" {
							assert.Equal(t, tt.wantTrace, deliverycontext.GetRequestIDFromContext(ctx))
						}

						return tt.runErr
					})
			}

			got := NewJobProcessor(runner, discardLogger()).Process(context.Background(), tt.data, tt.requestID)

			assert.Equal(t, tt.want, got)
		})
	}
}

func newPushContext(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestPushHandler(runner service.TagJobRunner) *PushHandler {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    discardLogger(),
		Processor: NewJobProcessor(runner, discardLogger()),
	})
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.TagJobEvent{JobID: "job-1", Text: "arduino uno"}
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	t.Run("processed job is acknowledged", func(t *testing.T) {
		runner := mockservice.NewMockTagJobRunner(t)
		runner.EXPECT().RunTagJob(mock.Anything, mock.Anything).Return(nil)

		c, rec := newPushContext(t, body)

		require.NoError(t, newTestPushHandler(runner).HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retryable failure asks for redelivery", func(t *testing.T) {
		runner := mockservice.NewMockTagJobRunner(t)
		runner.EXPECT().RunTagJob(mock.Anything, mock.Anything).
			Return(service.NewRetryableError(errors.New("timeout")))

		c, rec := newPushContext(t, body)

		require.NoError(t, newTestPushHandler(runner).HandlePush(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("undecodable data is acknowledged", func(t *testing.T) {
		runner := mockservice.NewMockTagJobRunner(t)

		c, rec := newPushContext(t, []byte(`{"message":{"data":"%%%"}}`))

		require.NoError(t, newTestPushHandler(runner).HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.example.com/push"}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger()})
	assert.True(t, h.verifyPushAuth)
	assert.Equal(t, "https://worker.example.com/push", h.audience)

	cfg.Env.Env = constants.EnvDevelop
	assert.False(t, NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger()}).verifyPushAuth)

	t.Run("missing bearer token is rejected", func(t *testing.T) {
		c, rec := newPushContext(t, []byte(`{}`))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
