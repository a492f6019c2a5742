package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"soko/internal/delivery/api/response"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped domain error keeps its code",
			err:        errors.Wrap(domainerrors.ErrBusinessNotFound, "load business"),
			wantStatus: http.StatusNotFound,
			wantCode:   "BUSINESS_NOT_FOUND",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext("")
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorMiddleware_LogsServerAppErrorsFromHandlers(t *testing.T) {
	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))
	c, rec := newTestContext("")

	handlerErr := response.HandleAppError(c, domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "insert review"))
	require.Error(t, handlerErr)
	assert.False(t, c.Response().Committed)

	m.HandleHTTPError(handlerErr, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.Contains(t, logs.String(), "Unhandled error")
	assert.Contains(t, logs.String(), "deadlock detected")
}

func TestHandleAppError_RendersClientErrors(t *testing.T) {
	c, rec := newTestContext("")

	require.NoError(t, response.HandleAppError(c, domainerrors.ErrInvalidPage.WithDetails("page=0")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "page=0")
}
