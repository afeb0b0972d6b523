package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "savor/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	err := domainerrors.ErrRestaurantNotFound.WithDetails("restaurant abc not found")

	rec := handleError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "RESTAURANT_NOT_FOUND")
	assert.Contains(t, body, "restaurant abc not found")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")

	rec := handleError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnhandledErrorHidesDetail(t *testing.T) {
	// A storage failure surfaces as a wrapped driver error; none of that
	// text may reach the client.
	err := errors.Wrap(errors.New(`pq: connection refused SELECT * FROM "users"`), "failed to list users for email scan")

	rec := handleError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.Contains(t, body, "Internal server error")
	assert.NotContains(t, body, "connection refused")
	assert.NotContains(t, body, "SELECT")
	assert.NotContains(t, body, "failed to list users")
}
