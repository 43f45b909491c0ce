package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
)

func CreateTestRequestWithSession(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutSession(method, target, body, pathParams)

	ctx := context.WithValue(req.Context(), middleware.SessionContextKey, sessionID)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutSession(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
