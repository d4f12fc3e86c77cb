package restapi

import (
	"net/http"

	"spacexdash/internal/models"
)

func (api *RestAPI) layoutHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.WebUI.Layout))
}

func (api *RestAPI) sitesHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.Dataset.Sites()))
}

func (api *RestAPI) datasetHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.Dataset.Summary()))
}
