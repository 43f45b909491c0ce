package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	t.Run("Success - Correlation ID And Status Logged", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(previous) })

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotSame(t, slog.Default(), middleware.LoggerFromContext(r.Context()))
			w.WriteHeader(http.StatusTeapot)
		})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"correlation_id":"req-42"`)
		assert.Contains(t, buf.String(), `"http_status":418`)
	})

	t.Run("Success - Server Errors Log At Error Level", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(previous) })

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream"))
		})
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil))

		// Assert
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"bytes":8`)
	})

	t.Run("Success - Handler Without Write Logs OK", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(previous) })

		// Act
		middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

		// Assert
		assert.Contains(t, buf.String(), `"http_status":200`)
		assert.Contains(t, buf.String(), `"level":"INFO"`)
	})

	t.Run("Success - Generates Correlation ID", func(t *testing.T) {
		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

		// Assert
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}
