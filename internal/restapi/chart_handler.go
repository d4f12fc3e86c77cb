package restapi

import (
	"errors"
	"net/http"

	"spacexdash/internal/charts"
	"spacexdash/internal/dashboard"
	"spacexdash/internal/launches"
	"spacexdash/internal/models"
	"spacexdash/internal/utils"
)

// Chart names served under /api/charts/.
const (
	successPieChart     = "success-pie"
	payloadScatterChart = "payload-scatter"
)

func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	name, format := utils.SplitFormat(utils.ExtractParam(r, "chart"))
	if format != "json" && format != "svg" {
		api.sendNotFound(w, r)
		return
	}

	query := r.URL.Query()
	site, fieldErrors := utils.ParseSiteParam(query, "site", launches.AllSites, nil)

	var figure dashboard.Figure
	var err error

	switch name {
	case successPieChart:
		if len(fieldErrors) > 0 {
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}
		figure, err = api.Dashboard.ProportionFigure(site)
	case payloadScatterChart:
		full := charts.FullRange(api.Dataset)
		var rng charts.PayloadRange
		rng.Low, fieldErrors = utils.ParseFloatParam(query, "low", full.Low, fieldErrors)
		rng.High, fieldErrors = utils.ParseFloatParam(query, "high", full.High, fieldErrors)
		if len(fieldErrors) > 0 {
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}
		figure, err = api.Dashboard.ScatterFigure(site, rng)
	default:
		api.sendNotFound(w, r)
		return
	}

	if errors.Is(err, dashboard.ErrInvalidInput) {
		api.validationErrorResponse(w, r, map[string][]string{
			"range": {err.Error()},
		})
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if format == "svg" {
		api.sendSVG(w, r, figure.SVG)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(figure.Spec))
}
