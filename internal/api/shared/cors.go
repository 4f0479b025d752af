package shared

import "net/http"

// CORS header values sent with successful generation responses.
const (
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type, X-API-Key"
)

// SetAllowOrigin sets Access-Control-Allow-Origin.
func SetAllowOrigin(w http.ResponseWriter, origin string) {
	w.Header().Set("Access-Control-Allow-Origin", origin)
}

// SetCORSHeaders sets the origin, methods and headers CORS fields.
func SetCORSHeaders(w http.ResponseWriter, origin string) {
	SetAllowOrigin(w, origin)
	w.Header().Set("Access-Control-Allow-Methods", AllowMethods)
	w.Header().Set("Access-Control-Allow-Headers", AllowHeaders)
}
