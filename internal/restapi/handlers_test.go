package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"spacexdash/internal/appconf"
)

func TestHealthHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/healthz")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	entry := entryOf(t, model)
	assert.Equal(t, "ok", entry["status"])
	assert.Equal(t, float64(14), entry["records"])
	assert.Equal(t, "test", entry["env"])
	assert.NotEmpty(t, entry["readableTime"])
}

func TestLayoutHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/layout.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "SpaceX Launch Records Dashboard", entry["title"])

	dropdown, ok := entry["siteDropdown"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "site-dropdown", dropdown["id"])
	assert.Equal(t, "ALL", dropdown["value"])

	options, ok := dropdown["options"].([]interface{})
	require.True(t, ok)
	// placeholder, All Sites and four launch sites
	assert.Len(t, options, 6)
}

func TestDatasetHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dataset.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, float64(14), entry["records"])
	assert.Equal(t, float64(0), entry["minPayloadKg"])
	assert.Equal(t, float64(9600), entry["maxPayloadKg"])
	assert.Equal(t,
		[]interface{}{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"},
		entry["sites"])
}

func TestSitesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/sites.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t,
		[]interface{}{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"},
		data["list"])
}

func TestUnknownRouteReturnsNotFoundEnvelope(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/nothing-here.json")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}

func TestWrongMethodReturnsMethodNotAllowed(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/update")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, model.Code)
	assert.Contains(t, resp.Header.Get("Allow"), http.MethodPost)
}

func TestPageIsServed(t *testing.T) {
	api := createTestApi(t)
	resp, body := getRaw(t, api, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "SpaceX Launch Records Dashboard")
	assert.Contains(t, string(body), `id="site-dropdown"`)
}

func TestStaticScriptIsServed(t *testing.T) {
	api := createTestApi(t)
	resp, body := getRaw(t, api, "/static/dash.js")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/api/update")
}

func TestDebugPageOnlyOutsideProduction(t *testing.T) {
	t.Run("test environment", func(t *testing.T) {
		api := createTestApi(t)
		resp, body := getRaw(t, api, "/debug/?dataType=sites")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "KSC LC-39A")
	})

	t.Run("production", func(t *testing.T) {
		api := createTestApiWithEnv(t, appconf.Production)
		resp, _ := getRaw(t, api, "/debug/?dataType=sites")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
