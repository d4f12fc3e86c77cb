package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"spacexdash/internal/dashboard"
	"spacexdash/internal/models"
	"spacexdash/internal/reactive"
	"spacexdash/internal/utils"
)

const maxUpdateBodyBytes = 64 << 10

// updateRequest is sent by the page whenever a control changes. Changed is
// empty on the initial render.
type updateRequest struct {
	Changed string          `json:"changed"`
	Inputs  reactive.Values `json:"inputs"`
}

func (api *RestAPI) updateHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpdateBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req updateRequest
	if err := decoder.Decode(&req); err != nil {
		fieldErrors := map[string][]string{
			"body": {fmt.Sprintf("Malformed update request: %v", err)},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	changed := utils.SanitizeInput(req.Changed)
	if changed != "" && !api.Dashboard.Registry.HasControl(changed) {
		api.validationErrorResponse(w, r, map[string][]string{
			"changed": {fmt.Sprintf("Unknown control %q.", changed)},
		})
		return
	}
	if req.Inputs == nil {
		req.Inputs = reactive.Values{}
	}

	result, err := api.Dashboard.Update(r.Context(), changed, req.Inputs)
	switch {
	case errors.Is(err, reactive.ErrUnknownControl):
		api.validationErrorResponse(w, r, map[string][]string{
			"changed": {err.Error()},
		})
		return
	case errors.Is(err, dashboard.ErrInvalidInput):
		api.validationErrorResponse(w, r, map[string][]string{
			"inputs": {err.Error()},
		})
		return
	case err != nil:
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(result))
}
