package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/delivery/http/response"
	domainerrors "pulse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorMiddlewareContext(t *testing.T) (*ErrorMiddleware, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/mail", nil)
	rec := httptest.NewRecorder()

	return m, e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestErrorMiddleware_DomainErrorRendersEnvelope(t *testing.T) {
	m, c, rec := newErrorMiddlewareContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrConnectionNotFound, "load connection"), c)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusNotFound, envelope.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONNECTION_NOT_FOUND", envelope.Error.Code)
}

func TestErrorMiddleware_EchoHTTPErrorRendersEnvelope(t *testing.T) {
	m, c, rec := newErrorMiddlewareContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "HTTP_ERROR", envelope.Error.Code)
	assert.Equal(t, "Method Not Allowed", envelope.Message)
}

func TestErrorMiddleware_UnknownErrorIsInternal(t *testing.T) {
	m, c, rec := newErrorMiddlewareContext(t)

	m.HandleHTTPError(errors.New("database exploded"), c)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	// The raw error text must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "database exploded")
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	m, c, rec := newErrorMiddlewareContext(t)

	require.NoError(t, c.NoContent(http.StatusNoContent))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
