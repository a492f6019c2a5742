package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"soko/internal/delivery/api/middleware"
	"soko/internal/delivery/api/response"
	"soko/internal/delivery/api/validator"
	"soko/internal/domain/entity"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors response.SuccessResponse/ErrorResponse for decoding.
type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

type pageEnvelope struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withActor(c echo.Context, roles ...entity.Role) usecase.Actor {
	actor := usecase.Actor{UserID: uuid.Must(uuid.NewV7()), Roles: roles}
	middleware.SetActor(c, actor)

	return actor
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) pageEnvelope {
	t.Helper()

	env := decode(t, rec)
	var page pageEnvelope
	require.NoError(t, json.Unmarshal(env.Data, &page))

	return page
}

func ptr[T any](v T) *T {
	return &v
}
