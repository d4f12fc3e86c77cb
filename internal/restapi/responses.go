package restapi

import (
	"encoding/json"
	"net/http"

	"spacexdash/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	w.WriteHeader(response.Code)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.logEncodeError(r, "response", err)
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponse(http.StatusNotFound, nil, "resource not found"))
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponse(http.StatusMethodNotAllowed, nil, "method not allowed"))
}

func (api *RestAPI) sendSVG(w http.ResponseWriter, r *http.Request, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write([]byte(svg)); err != nil {
		api.logEncodeError(r, "svg", err)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
