package restapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateEnvelope struct {
	Code int `json:"code"`
	Data struct {
		Entry struct {
			Updates []struct {
				Callback string `json:"callback"`
				Output   string `json:"output"`
				Result   struct {
					Figure map[string]interface{} `json:"figure"`
					SVG    string                 `json:"svg"`
				} `json:"result"`
			} `json:"updates"`
			Pending []struct {
				Callback string   `json:"callback"`
				Missing  []string `json:"missing"`
			} `json:"pending"`
		} `json:"entry"`
	} `json:"data"`
}

type fieldErrorsEnvelope struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func decodeUpdate(t *testing.T, raw []byte) updateEnvelope {
	t.Helper()
	var env updateEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func decodeFieldErrors(t *testing.T, raw []byte) map[string][]string {
	t.Helper()
	var env fieldErrorsEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env.FieldErrors
}

func TestUpdateHandlerInitialRender(t *testing.T) {
	api := createTestApi(t)
	resp, raw := postUpdate(t, api, `{
		"changed": "",
		"inputs": {"site-dropdown": "ALL", "payload-slider": [0, 10000]}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeUpdate(t, raw)
	updates := env.Data.Entry.Updates
	require.Len(t, updates, 2)
	assert.Empty(t, env.Data.Entry.Pending)

	assert.Equal(t, "site-proportion", updates[0].Callback)
	assert.Equal(t, "success-pie-chart", updates[0].Output)
	assert.Equal(t, "Total Success Launches by Site", updates[0].Result.Figure["title"])
	assert.Contains(t, updates[0].Result.SVG, "<svg")

	assert.Equal(t, "payload-scatter", updates[1].Callback)
	assert.Equal(t, "success-payload-scatter-chart", updates[1].Output)
	assert.Equal(t, "Correlation between Payload & Success for all Sites", updates[1].Result.Figure["title"])
}

func TestUpdateHandlerSliderChangeOnlyRunsScatter(t *testing.T) {
	api := createTestApi(t)
	resp, raw := postUpdate(t, api, `{
		"changed": "payload-slider",
		"inputs": {"site-dropdown": "KSC LC-39A", "payload-slider": [2000, 6000]}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updates := decodeUpdate(t, raw).Data.Entry.Updates
	require.Len(t, updates, 1)
	assert.Equal(t, "payload-scatter", updates[0].Callback)
	assert.Equal(t, "Correlation between Payload & Success for site KSC LC-39A", updates[0].Result.Figure["title"])
}

func TestUpdateHandlerSiteChangeRunsBoth(t *testing.T) {
	api := createTestApi(t)
	resp, raw := postUpdate(t, api, `{
		"changed": "site-dropdown",
		"inputs": {"site-dropdown": "VAFB SLC-4E", "payload-slider": [0, 10000]}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updates := decodeUpdate(t, raw).Data.Entry.Updates
	require.Len(t, updates, 2)
	assert.Equal(t, "Total Success Launches for site VAFB SLC-4E", updates[0].Result.Figure["title"])
}

func TestUpdateHandlerUnsettledInputIsPending(t *testing.T) {
	api := createTestApi(t)
	resp, raw := postUpdate(t, api, `{
		"changed": "site-dropdown",
		"inputs": {"site-dropdown": "ALL"}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeUpdate(t, raw)
	require.Len(t, env.Data.Entry.Updates, 1)
	assert.Equal(t, "site-proportion", env.Data.Entry.Updates[0].Callback)

	require.Len(t, env.Data.Entry.Pending, 1)
	assert.Equal(t, "payload-scatter", env.Data.Entry.Pending[0].Callback)
	assert.Equal(t, []string{"payload-slider"}, env.Data.Entry.Pending[0].Missing)
}

func TestUpdateHandlerValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "malformed json",
			body:  `{"changed": `,
			field: "body",
		},
		{
			name:  "unknown field",
			body:  `{"changed": "site-dropdown", "extra": true}`,
			field: "body",
		},
		{
			name:  "unknown control",
			body:  `{"changed": "launch-button", "inputs": {}}`,
			field: "changed",
		},
		{
			name:  "output id sent as changed control",
			body:  `{"changed": "success-pie-chart", "inputs": {"site-dropdown": "ALL"}}`,
			field: "changed",
		},
		{
			name:  "inverted range",
			body:  `{"changed": "payload-slider", "inputs": {"site-dropdown": "ALL", "payload-slider": [6000, 2000]}}`,
			field: "inputs",
		},
		{
			name:  "site of the wrong type",
			body:  `{"changed": "site-dropdown", "inputs": {"site-dropdown": 42}}`,
			field: "inputs",
		},
	}

	api := createTestApi(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := postUpdate(t, api, tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			fieldErrors := decodeFieldErrors(t, raw)
			assert.NotEmpty(t, fieldErrors[tt.field], "expected an error for %q, got %v", tt.field, fieldErrors)
		})
	}
}
