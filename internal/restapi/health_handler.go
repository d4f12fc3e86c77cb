package restapi

import (
	"net/http"
	"time"

	"spacexdash/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := models.NewHealthModel(time.Now(), api.Dataset.Len(), api.Config.Env.String())
	api.sendResponse(w, r, models.NewEntryResponse(health))
}
