package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"spacexdash/internal/app"
)

type RestAPI struct {
	*app.Application
	compression CompressionConfig
}

// NewRestAPI creates a new RestAPI instance with the default compression settings
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		compression: DefaultCompressionConfig(),
	}
}

// Handler returns the routed handler wrapped in the middleware chain. The
// outermost layer runs first: request ID, request logging, security headers,
// then compression.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = NewCompressionMiddleware(api.compression)(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}
