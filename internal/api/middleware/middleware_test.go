package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c echo.Context) error {
	return c.String(http.StatusOK, RequestID(c))
}

func TestRequestValidationAssignsID(t *testing.T) {
	e := echo.New()
	e.Use(RequestValidation(1024))
	e.GET("/", ok)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())
}

func TestRequestValidationKeepsCallerID(t *testing.T) {
	e := echo.New()
	e.Use(RequestValidation(1024))
	e.GET("/", ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestRequestValidationRejectsLargeBody(t *testing.T) {
	e := echo.New()
	e.Use(RequestValidation(8))
	e.POST("/", ok)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_too_large")
}

func TestRateLimitDeniesAfterBurst(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(1, 2))
	e.POST("/", ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(0, 0))
	e.POST("/", ok)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	e := echo.New()
	e.Use(TimeoutConfig(time.Second))

	var deadlineSet bool
	e.GET("/", func(c echo.Context) error {
		_, deadlineSet = c.Request().Context().Deadline()
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, deadlineSet)
}
