package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brightpane/roundfinder/internal/app"
	"github.com/brightpane/roundfinder/internal/appconf"
	"github.com/brightpane/roundfinder/internal/frequency"
	"github.com/brightpane/roundfinder/internal/logging"
	"github.com/brightpane/roundfinder/internal/models"
)

var testNow = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

func createTestApplication(t *testing.T, rateLimit int) *app.Application {
	t.Helper()

	calendar, err := frequency.DefaultCalendar()
	require.NoError(t, err)

	return &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			RateLimit: rateLimit,
		},
		Logger:    logging.NewStructuredLogger(io.Discard, slog.LevelInfo),
		Directory: frequency.NewDirectory(calendar),
		Location:  time.UTC,
		Clock:     func() time.Time { return testNow },
	}
}

// createTestApi creates a RestAPI over the embedded calendar with a fixed clock.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	api := NewRestAPI(createTestApplication(t, 100))
	t.Cleanup(api.Shutdown)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// retrieveFieldErrors requests an endpoint expected to fail validation.
func retrieveFieldErrors(t *testing.T, endpoint string) (*http.Response, map[string][]string) {
	t.Helper()

	server := httptest.NewServer(createTestApi(t).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, slog.Default(), "http_response_body")

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp, body.FieldErrors
}

func entryFromResponse(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

func listFromResponse(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	return list
}
