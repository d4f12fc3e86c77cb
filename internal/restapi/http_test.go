package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"spacexdash/internal/app"
	"spacexdash/internal/appconf"
	"spacexdash/internal/launches"
	"spacexdash/internal/logging"
	"spacexdash/internal/models"
)

// createTestApi creates a new RestAPI instance over the launch fixture for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithEnv(t, appconf.Test)
}

func createTestApiWithEnv(t *testing.T, env appconf.Environment) *RestAPI {
	t.Helper()

	ds, err := launches.Load(models.GetFixturePath(t, "spacex_launch_dash.csv"))
	require.NoError(t, err)

	cfg := appconf.Config{
		Env:             env,
		DataPath:        ds.Source(),
		LogLevel:        "info",
		ShutdownTimeout: time.Second,
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelInfo)

	application, err := app.NewWithDataset(cfg, logger, ds)
	require.NoError(t, err)

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
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

// postUpdate posts body to /api/update and returns the response with its raw body.
func postUpdate(t *testing.T, api *RestAPI, body string) (*http.Response, []byte) {
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/update", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// getRaw fetches endpoint and returns the response with its raw body.
func getRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}
