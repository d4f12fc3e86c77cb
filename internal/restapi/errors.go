package restapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"spacexdash/internal/logging"
	"spacexdash/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))

	// Error envelopes carry version 1.
	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.logEncodeError(r, "server error response", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.logEncodeError(r, "validation error response", err)
	}
}

func (api *RestAPI) panicResponse(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", recovered))
}

func (api *RestAPI) logEncodeError(r *http.Request, what string, err error) {
	logging.LogError(logging.FromContext(r.Context()), "failed to encode "+what, err,
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))
}
