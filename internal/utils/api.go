package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present it returns def; if the value is invalid it returns def
// and records a field error.
// - params: URL query parameters.
// - key: The key to look for in the query parameters.
// - def: The value used when the key is absent or invalid.
// - fieldErrors: A map to collect validation errors for fields.
func ParseFloatParam(params url.Values, key string, def float64, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	if err := ValidatePayloadBound(f); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return def, fieldErrors
	}
	return f, fieldErrors
}

// ParseSiteParam retrieves the site selection from the query, defaulting to def.
func ParseSiteParam(params url.Values, key, def string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	site := params.Get(key)
	if site == "" {
		return def, fieldErrors
	}

	if err := ValidateSite(site); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return def, fieldErrors
	}
	return site, fieldErrors
}
