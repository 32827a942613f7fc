package handlers

import (
	"encoding/json"

	"items-api/internal/models"
	"items-api/pkg/lambda"
)

// ItemBody is the success envelope carrying a single item.
type ItemBody struct {
	OK   bool        `json:"ok"`
	Item models.Item `json:"item"`
}

// ListBody is the success envelope for the list operation.
type ListBody struct {
	OK    bool          `json:"ok"`
	Count int           `json:"count"`
	Items []models.Item `json:"items"`
}

// StatusBody is the success envelope with no payload (delete).
type StatusBody struct {
	OK bool `json:"ok"`
}

// HelloBody is the connectivity-check success envelope.
type HelloBody struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorBody is the uniform failure envelope; failures differ only by
// status code.
type ErrorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ResponseHeaders returns the fixed header set attached to every response.
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	}
}

// NewResponse wraps a status code and payload into the transport envelope.
func NewResponse(statusCode int, payload interface{}) *lambda.Response {
	body, _ := json.Marshal(payload)
	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    ResponseHeaders(),
		Body:       body,
	}
}

// NewErrorResponse wraps an error into the uniform failure envelope.
func NewErrorResponse(statusCode int, err error) *lambda.Response {
	return NewResponse(statusCode, ErrorBody{OK: false, Error: err.Error()})
}
