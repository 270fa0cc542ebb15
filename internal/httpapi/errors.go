package httpapi

import (
	"encoding/json"
	"net/http"

	"blocksd/internal/bridge"
	"blocksd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeServiceError maps bridge errors to HTTP status codes: unknown form is
// 404, editor still initializing is 409, a failed editor relay is 502.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case bridge.IsFormNotFound(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case bridge.IsNotInitialized(err):
		notReadyTotal.WithLabelValues(routePatternOrPath(r)).Inc()
		writeJSONError(w, http.StatusConflict, err.Error())
	case bridge.IsEditorUnavailable(err):
		writeJSONError(w, http.StatusBadGateway, err.Error())
	default:
		if he, ok := err.(HTTPError); ok {
			writeJSONError(w, he.StatusCode(), he.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
