package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// WriteJSON writes v as a JSON body with an exact Content-Length.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteError writes {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, types.ErrorResponse{Error: message})
}
