package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils/response"
)

// sessionID reads the session set by the session middleware, writing an
// error response when it is missing.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Error("Request reached handler without a session")
		response.Error(w, errors.InternalError("Session is not available"))

		return "", false
	}

	return id, true
}

func pathInt64(w http.ResponseWriter, r *http.Request, name, message string) (int64, bool) {
	value, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || value <= 0 {
		response.Error(w, errors.BadRequestError(message))

		return 0, false
	}

	return value, true
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		response.Error(w, errors.BadRequestError("Invalid item index"))

		return 0, false
	}

	return index, true
}
