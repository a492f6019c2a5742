// Package inference talks to a hosted model inference API (Hugging Face
// compatible) and implements the fail-open enrichment services on top of it.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"soko/config"
	"soko/internal/errors"
	"soko/internal/infra/metrics"

	"github.com/sony/gobreaker/v2"
)

const maxResponseBytes = 1 << 20

// Client posts task payloads to {endpoint}/models/{model}. Every call goes
// through one circuit breaker so a failing API is skipped quickly.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

// NewClient builds the client from the enrichment configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	e := cfg.Enrichment
	settings := gobreaker.Settings{
		Name:        "inference",
		MaxRequests: 1,
		Timeout:     e.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= e.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("Inference circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Client{
		httpClient: &http.Client{Timeout: e.Timeout},
		endpoint:   strings.TrimRight(e.Endpoint, "/"),
		token:      e.Token,
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:     logger,
	}
}

// Call sends payload to model and decodes the JSON response into out.
// task only labels metrics.
func (c *Client) Call(ctx context.Context, task, model string, payload, out any) error {
	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.post(ctx, model, payload)
	})
	metrics.InferenceDuration.WithLabelValues(task).Observe(time.Since(start).Seconds())
	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.InferenceRequests.WithLabelValues(task, outcome).Inc()

		return errors.Wrapf(err, "inference %s", task)
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.InferenceRequests.WithLabelValues(task, "bad_response").Inc()

		return errors.Wrapf(err, "decode %s response", task)
	}
	metrics.InferenceRequests.WithLabelValues(task, "ok").Inc()

	return nil
}

func (c *Client) post(ctx context.Context, model string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode payload")
	}

	url := fmt.Sprintf("%s/models/%s", c.endpoint, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("model %s returned status %d: %s", model, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
