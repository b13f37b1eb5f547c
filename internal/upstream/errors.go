// Package upstream holds the error types shared by the third-party API clients
// and the accessor used to dig messages out of their error bodies.
package upstream

import (
	"encoding/json"
	"fmt"
)

// UnknownError is the message reported when an upstream error body carries no
// usable message.
const UnknownError = "Unknown error"

// APIError represents a non-success HTTP status returned by an upstream API.
type APIError struct {
	Service    string // e.g. "Gemini", "JSearch"
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Service, e.Message)
}

// MalformedResponseError represents a success status whose body does not have
// the shape the client expects.
type MalformedResponseError struct {
	Service string
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("Invalid response from %s API", e.Service)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// Lookup walks path through a JSON object body and returns the string found at
// the end of it. Any missing link, a non-object along the way, a non-string
// leaf, an empty body or a body that is not JSON yields UnknownError.
func Lookup(body []byte, path ...string) string {
	if len(body) == 0 || len(path) == 0 {
		return UnknownError
	}

	var node any
	if err := json.Unmarshal(body, &node); err != nil {
		return UnknownError
	}

	for _, key := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return UnknownError
		}
		node, ok = obj[key]
		if !ok {
			return UnknownError
		}
	}

	msg, ok := node.(string)
	if !ok || msg == "" {
		return UnknownError
	}
	return msg
}
