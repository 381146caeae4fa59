// Common test helpers
package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/registry"
	"github.com/devutils/toolbelt/services/search"
	"github.com/devutils/toolbelt/validation"
)

var defaultTestRequestHeaders = map[string]string{"Content-Type": "application/json"}

type testCase struct {
	name           string
	requestHeaders map[string]string
	requestBody    map[string]any
	queryParams    map[string]string
	expectedStatus int
}

// decodedResponse mirrors the envelope with raw data so each test can decode
// the payload into its own type.
type decodedResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorBody      `json:"error"`
	Meta    Meta            `json:"meta"`
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	testLogger := newTestLogger()
	reg := registry.Default()
	engine := search.New(testLogger, reg)

	validator, err := validation.New(testLogger)
	require.NoError(t, err, "could not create validator")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	apiRoutes := router.Group("/api")

	SetupSearch(apiRoutes, testLogger, engine, validator)
	SetupTools(apiRoutes, testLogger, reg, validator)
	SetupCategories(apiRoutes, reg)

	return router
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, headers map[string]string, requestBodyMap map[string]interface{}, queryParams map[string]string) *httptest.ResponseRecorder {

	var err error
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		endpoint = endpoint + "?"
		for key, value := range queryParams {
			if endpoint[len(endpoint)-1] != '?' {
				endpoint = endpoint + "&"
			}
			endpoint = endpoint + key + "=" + value
		}
	}
	var jsonBody []byte
	var req *http.Request
	if requestBodyMap != nil {
		jsonBody, err = json.Marshal(requestBodyMap)
		assert.NoError(err)
	}

	if len(jsonBody) > 0 {
		req, err = http.NewRequest(method, endpoint, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequest(method, endpoint, nil)
	}
	assert.NoError(err)

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)

	return w
}

func decodeEnvelope(assert *require.Assertions, w *httptest.ResponseRecorder) decodedResponse {
	var response decodedResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
