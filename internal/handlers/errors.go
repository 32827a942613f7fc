package handlers

import (
	"encoding/json"
	"errors"

	"items-api/internal/services"
	"items-api/internal/store"
)

// Request-parsing errors surfaced as 400s.
var (
	// ErrInvalidBody is returned when the request body is missing, not
	// valid JSON, or not a JSON object.
	ErrInvalidBody = errors.New("request body must be a JSON object")

	// ErrMissingID is returned when the path identifier is absent.
	ErrMissingID = errors.New("item id is required")
)

// isValidationError checks if an error maps to a 400 response
func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, ErrMissingID) ||
		errors.Is(err, services.ErrMissingName) ||
		errors.Is(err, services.ErrNoUpdatableFields)
}

// isNotFoundError checks if an error maps to a 404 response
func isNotFoundError(err error) bool {
	return store.IsNotFound(err)
}

// decodeObject parses a request body into a non-nil JSON object.
func decodeObject(body []byte) (map[string]interface{}, error) {
	if len(body) == 0 {
		return nil, ErrInvalidBody
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, ErrInvalidBody
	}
	// A literal JSON null unmarshals to a nil map.
	if fields == nil {
		return nil, ErrInvalidBody
	}
	return fields, nil
}
