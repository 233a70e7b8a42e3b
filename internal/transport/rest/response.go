package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

const successText = "Success"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body)) //nolint:errcheck
}

// errorText renders err the way clients expect it: "Error: <message>".
func errorText(err error) string {
	return "Error: " + domain.UserMessage(err)
}

// isServerError reports whether err is not the client's fault.
func isServerError(err error) bool {
	return !errors.Is(err, domain.ErrMissingField) &&
		!errors.Is(err, domain.ErrMalformedPayload) &&
		!errors.Is(err, domain.ErrUnknownAction)
}

// statusFor maps err to the status used by the /api routes.
func statusFor(err error) int {
	if isServerError(err) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
