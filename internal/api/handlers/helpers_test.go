package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/testutils"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const sessionID = "6f1c2a7e-3d4b-4c1a-9e2f-5a8b7c6d5e4f"

type envelope struct {
	Success bool                    `json:"success"`
	Data    json.RawMessage         `json:"data"`
	Error   *response.ErrorResponse `json:"error"`
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

func sessionRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return testutils.CreateTestRequestWithSession(method, target, body, sessionID, pathParams)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, env envelope, dest any) {
	t.Helper()

	require.NotEmpty(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}
