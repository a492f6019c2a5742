package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"soko/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisherSendsPushEnvelope(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.TagJobEvent{RequestID: "req-1", JobID: "job-1", Text: "arduino kit", ProductID: "p-1"}

	require.NoError(t, publisher.PublishTagJob(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "job-1", got.Message.MessageID)
	assert.Equal(t, map[string]string{"job_id": "job-1", "product_id": "p-1", "request_id": "req-1"}, got.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.TagJobEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisherReportsWorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())

	err := publisher.PublishTagJob(context.Background(), &service.TagJobEvent{JobID: "job-1"})
	assert.ErrorContains(t, err, "503")
}

type recordingRunner struct {
	mu     sync.Mutex
	events []*service.TagJobEvent
	ctxErr error
}

func (r *recordingRunner) RunTagJob(ctx context.Context, event *service.TagJobEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	r.ctxErr = ctx.Err()

	return nil
}

func TestInlinePublisherOutlivesRequestContext(t *testing.T) {
	runner := &recordingRunner{}
	publisher := NewInlinePublisher(runner, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, publisher.PublishTagJob(ctx, &service.TagJobEvent{JobID: "job-1"}))
	require.NoError(t, publisher.Close())

	require.Len(t, runner.events, 1)
	assert.Equal(t, "job-1", runner.events[0].JobID)
	assert.NoError(t, runner.ctxErr)
}
