package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "goal-tracker.com/goal-tracker/internal/errors"
)

func callFrom(e *echo.Echo, h echo.HandlerFunc, ip string) error {
	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	return h(e.NewContext(req, rec))
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	h := RateLimiter(2, time.Minute)(ok)

	assert.NoError(t, callFrom(e, h, "10.0.0.1"))
	assert.NoError(t, callFrom(e, h, "10.0.0.1"))

	err := callFrom(e, h, "10.0.0.1")
	assert.True(t, errors.Is(err, apperrors.ErrRateLimited), "third call should be limited, got %v", err)

	assert.NoError(t, callFrom(e, h, "10.0.0.2"), "other clients keep their own budget")
}

func TestRateLimiter_WindowResets(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	h := RateLimiter(1, 20*time.Millisecond)(ok)

	assert.NoError(t, callFrom(e, h, "10.0.0.3"))
	assert.Error(t, callFrom(e, h, "10.0.0.3"))

	time.Sleep(40 * time.Millisecond)
	assert.NoError(t, callFrom(e, h, "10.0.0.3"))
}
