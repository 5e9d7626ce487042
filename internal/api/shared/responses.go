package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the common wrapper of every response body. Success payloads
// embed it so their fields sit alongside code and message.
type Envelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success builds the envelope of a successful response.
func Success(message string) Envelope {
	return Envelope{Code: "success", Message: message}
}

// ErrorEnvelope is the body of every failed response. Kind carries the
// machine-readable failure kind alongside the human-readable message.
type ErrorEnvelope struct {
	Code    string `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the error envelope with the given status code,
// failure kind, and message. The trace ID from the request context is
// attached when available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"kind", kind,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorEnvelope{
		Code:    "error",
		Kind:    kind,
		Message: message,
		TraceID: traceID,
	})
}
