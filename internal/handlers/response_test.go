package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"items-api/internal/models"
)

// TestResponseHeaders tests the fixed header set
func TestResponseHeaders(t *testing.T) {
	headers := ResponseHeaders()

	expected := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	}
	for k, v := range expected {
		if headers[k] != v {
			t.Errorf("Expected header %s '%s', got '%s'", k, v, headers[k])
		}
	}
	if len(headers) != len(expected) {
		t.Errorf("Expected %d headers, got %d", len(expected), len(headers))
	}
}

// TestNewResponse tests envelope construction
func TestNewResponse(t *testing.T) {
	item := models.Item{"pk": "a1", "name": "widget"}
	resp := NewResponse(201, ItemBody{OK: true, Item: item})

	if resp.StatusCode != 201 {
		t.Errorf("Expected status 201, got %d", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", resp.Headers["Content-Type"])
	}

	var body ItemBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	if !body.OK {
		t.Error("Expected ok true")
	}
	if body.Item.Name() != "widget" {
		t.Errorf("Expected item name 'widget', got '%s'", body.Item.Name())
	}
}

// TestNewErrorResponse tests the uniform failure envelope
func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(500, errors.New("throughput exceeded"))

	if resp.StatusCode != 500 {
		t.Errorf("Expected status 500, got %d", resp.StatusCode)
	}

	var body ErrorBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	if body.OK {
		t.Error("Expected ok false")
	}
	if body.Error != "throughput exceeded" {
		t.Errorf("Expected store message surfaced verbatim, got '%s'", body.Error)
	}
}

// TestDecodeObject tests request-body parsing edge cases
func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid object", `{"name":"widget"}`, false},
		{"empty object", `{}`, false},
		{"empty body", ``, true},
		{"null", `null`, true},
		{"array", `[1,2]`, true},
		{"string", `"widget"`, true},
		{"malformed", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeObject([]byte(tt.body))
			if tt.wantErr && !errors.Is(err, ErrInvalidBody) {
				t.Errorf("Expected ErrInvalidBody, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected success, got %v", err)
			}
		})
	}
}
