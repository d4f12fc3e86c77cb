package webui

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"spacexdash/internal/launches"
)

// WebUI serves the dashboard page, its static assets and the debug dump.
type WebUI struct {
	Dataset *launches.Dataset
	Layout  Layout
	Page    *Page
	// Debug enables the /debug/ data dump.
	Debug bool
}

// New builds the layout and renders the page for ds.
func New(ds *launches.Dataset, pretty, debug bool) (*WebUI, error) {
	layout := NewLayout(ds)
	page, err := NewPage(layout, pretty)
	if err != nil {
		return nil, fmt.Errorf("building web UI: %w", err)
	}
	return &WebUI{
		Dataset: ds,
		Layout:  layout,
		Page:    page,
		Debug:   debug,
	}, nil
}

// SetRoutes registers the page, static and debug routes on router.
func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/", webUI.Page)
	router.ServeFiles("/static/*filepath", StaticFS())
	if webUI.Debug {
		router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	}
}
