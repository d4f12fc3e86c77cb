package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a route parameter value from the request context.
func ExtractParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName(paramName)
}

// SplitFormat splits "name.ext" into its name and extension. A value without
// a dot has an empty extension.
func SplitFormat(raw string) (name, format string) {
	i := strings.LastIndex(raw, ".")
	if i < 0 {
		return raw, ""
	}
	return raw[:i], raw[i+1:]
}
