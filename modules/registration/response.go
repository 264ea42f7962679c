package registration

import (
	"encoding/json"
	"net/http"
)

// Client-facing error messages.
const (
	MsgRateLimited     = "Too many registration attempts. Please try again later."
	MsgNotConfigured   = "Server configuration error"
	MsgTooFast         = "Submission too fast. Please take your time filling the form."
	MsgValidation      = "Validation failed"
	MsgSubmitFailed    = "Failed to submit registration. Please try again."
	MsgInvalidRequest  = "Invalid request"
	MsgRequestTooLarge = "Request too large"
)

// Response is the JSON body of every endpoint response.
type Response struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Error: msg})
}
