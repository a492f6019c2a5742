// Package handler turns broker deliveries into tag job runs.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"soko/config"
	deliverycontext "soko/internal/delivery/context"
	"soko/internal/domain/constants"
	"soko/internal/domain/service"
	"soko/internal/errors"
	"soko/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Outcome tells the transport how to settle a delivery.
type Outcome int

const (
	// OutcomeDone acknowledges the message: the job ran.
	OutcomeDone Outcome = iota
	// OutcomeDropped acknowledges a message that can never succeed.
	OutcomeDropped
	// OutcomeRetry asks the broker to redeliver.
	OutcomeRetry
)

// JobProcessor decodes tag job payloads and runs them. Push and queue
// transports share it.
type JobProcessor struct {
	runner service.TagJobRunner
	logger *slog.Logger
}

// NewJobProcessor is the constructor for JobProcessor.
func NewJobProcessor(runner service.TagJobRunner, logger *slog.Logger) *JobProcessor {
	return &JobProcessor{runner: runner, logger: logger}
}

// Process runs the job encoded in data. requestID, when known from the
// transport, takes precedence over the one in the payload.
func (p *JobProcessor) Process(ctx context.Context, data []byte, requestID string) Outcome {
	var event service.TagJobEvent
	if err := json.Unmarshal(data, &event); err != nil {
		p.logger.ErrorContext(ctx, "[Worker] Failed to parse tag job event", slog.Any("error", err))

		return OutcomeDropped
	}

	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = deliverycontext.WithTrace(ctx, requestID, p.logger)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	reqLogger.Info("[Worker] Processing tag job", slog.String("job_id", event.JobID))

	if err := p.runner.RunTagJob(ctx, &event); err != nil {
		retryable := service.IsRetryableError(err)
		reqLogger.Error("[Worker] Failed to process tag job",
			slog.String("job_id", event.JobID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return OutcomeRetry
		}

		return OutcomeDropped
	}

	reqLogger.Info("[Worker] Tag job processed successfully", slog.String("job_id", event.JobID))

	return OutcomeDone
}

// PushHandler handles Pub/Sub push messages carrying tag jobs
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	processor      *JobProcessor
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Processor *JobProcessor
}

// NewPushHandler creates a new Pub/Sub push handler. OIDC tokens are only
// checked for the google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.PubSub
	verifyPushAuth := cfg != nil &&
		cfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if cfg != nil {
		audience = cfg.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		processor:      params.Processor,
		logger:         params.Logger,
	}
}

// HandlePush answers 200 for processed or undeliverable jobs and 503 when
// Pub/Sub should retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if h.processor.Process(ctx, data, pushMsg.Message.Attributes["request_id"]) == OutcomeRetry {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// An empty audience means the URL of the push endpoint itself.
func verifyPubSubToken(req *http.Request, audience string) error {
	token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
