package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
	router.PanicHandler = api.panicResponse

	api.WebUI.SetRoutes(router)

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/layout.json", api.layoutHandler)
	router.HandlerFunc(http.MethodGet, "/api/dataset.json", api.datasetHandler)
	router.HandlerFunc(http.MethodGet, "/api/sites.json", api.sitesHandler)
	router.HandlerFunc(http.MethodPost, "/api/update", api.updateHandler)
	router.HandlerFunc(http.MethodGet, "/api/charts/:chart", api.chartHandler)
}
