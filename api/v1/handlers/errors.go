package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// SendError sends a standardized JSON error response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// SendErrorWithCode sends a JSON error response with a custom error code
func SendErrorWithCode(w http.ResponseWriter, message, code string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
	})
}

// NotFoundHandler replaces the router's plain-text 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	SendError(w, "Route "+r.URL.Path+" not found", http.StatusNotFound)
}

// MethodNotAllowedHandler replaces the router's plain-text 405.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	SendErrorWithCode(w, "Method "+r.Method+" not allowed on "+r.URL.Path, "method_not_allowed", http.StatusMethodNotAllowed)
}

// writeJSON marshals v before touching the response so an encoding failure
// can still produce a 500. The body is written without a trailing newline.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"Internal Server Error","message":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}
