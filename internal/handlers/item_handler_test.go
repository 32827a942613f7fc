package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/services"
	"items-api/internal/store"
	"items-api/pkg/lambda"
)

func newTestHandlers(t *testing.T) (*ItemHandler, *HelloHandler, *store.MemoryStore) {
	t.Helper()
	memStore := store.NewMemoryStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc := services.NewItemService(memStore, logger)
	return NewItemHandler(svc), NewHelloHandler(svc), memStore
}

func postItem(t *testing.T, h *ItemHandler, body string) *lambda.Response {
	t.Helper()
	resp, err := h.HandleCreate(context.Background(), &lambda.Request{
		Method: "POST",
		Path:   "/items",
		Body:   []byte(body),
	})
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	return resp
}

func decodeItemBody(t *testing.T, resp *lambda.Response) models.Item {
	t.Helper()
	var body ItemBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Response body is not valid JSON: %v", err)
	}
	return body.Item
}

// TestHandleCreate tests the create success path
func TestHandleCreate(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	resp := postItem(t, h, `{"name":"widget","color":"red"}`)
	if resp.StatusCode != 201 {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	item := decodeItemBody(t, resp)
	if item.PK() == "" {
		t.Error("Expected generated pk")
	}
	if item.Name() != "widget" {
		t.Errorf("Expected name 'widget', got '%s'", item.Name())
	}
	if item["color"] != "red" {
		t.Errorf("Expected color 'red', got '%v'", item["color"])
	}
	if item.CreatedAt() != item.UpdatedAt() {
		t.Errorf("Expected equal timestamps, got createdAt=%s updatedAt=%s",
			item.CreatedAt(), item.UpdatedAt())
	}
}

// TestHandleCreateInvalidBody tests body validation on create
func TestHandleCreateInvalidBody(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing body", ``},
		{"not json", `not json`},
		{"json null", `null`},
		{"missing name", `{"color":"red"}`},
		{"empty name", `{"name":""}`},
		{"non-string name", `{"name":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postItem(t, h, tt.body)
			if resp.StatusCode != 400 {
				t.Errorf("Expected status 400, got %d", resp.StatusCode)
			}

			var body ErrorBody
			if err := json.Unmarshal(resp.Body, &body); err != nil {
				t.Fatalf("Error body is not valid JSON: %v", err)
			}
			if body.OK || body.Error == "" {
				t.Errorf("Expected error envelope, got %+v", body)
			}
		})
	}
}

// TestHandleCreateStoreFault tests the 500 path with the store message
// surfaced verbatim
func TestHandleCreateStoreFault(t *testing.T) {
	h, _, memStore := newTestHandlers(t)
	memStore.FailWith("put", errors.New("throughput exceeded"))

	resp := postItem(t, h, `{"name":"widget"}`)
	if resp.StatusCode != 500 {
		t.Errorf("Expected status 500, got %d", resp.StatusCode)
	}

	var body ErrorBody
	json.Unmarshal(resp.Body, &body)
	if body.Error != "throughput exceeded" {
		t.Errorf("Expected store message surfaced, got '%s'", body.Error)
	}
}

// TestHandleGet tests lookup by path identifier
func TestHandleGet(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	ctx := context.Background()

	created := decodeItemBody(t, postItem(t, h, `{"name":"widget"}`))

	resp, _ := h.HandleGet(ctx, &lambda.Request{
		Method:     "GET",
		PathParams: map[string]string{"id": created.PK()},
	})
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	got := decodeItemBody(t, resp)
	if got.PK() != created.PK() || got.Name() != "widget" {
		t.Errorf("Round trip mismatch: %v", got)
	}

	// Missing identifier
	resp, _ = h.HandleGet(ctx, &lambda.Request{Method: "GET", PathParams: map[string]string{}})
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for missing id, got %d", resp.StatusCode)
	}

	// Nonexistent identifier
	resp, _ = h.HandleGet(ctx, &lambda.Request{
		Method:     "GET",
		PathParams: map[string]string{"id": "nope"},
	})
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

// TestHandleUpdate tests the partial-update contract end to end
func TestHandleUpdate(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	ctx := context.Background()

	created := decodeItemBody(t, postItem(t, h, `{"name":"widget"}`))
	time.Sleep(5 * time.Millisecond)

	resp, _ := h.HandleUpdate(ctx, &lambda.Request{
		Method:     "PUT",
		PathParams: map[string]string{"id": created.PK()},
		Body:       []byte(`{"foo":"bar","pk":"forged","createdAt":"forged"}`),
	})
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	updated := decodeItemBody(t, resp)
	if updated["foo"] != "bar" {
		t.Errorf("Expected foo 'bar', got '%v'", updated["foo"])
	}
	if updated.PK() != created.PK() {
		t.Errorf("Expected pk unchanged, got '%s'", updated.PK())
	}
	if updated.CreatedAt() != created.CreatedAt() {
		t.Errorf("Expected createdAt unchanged, got '%s'", updated.CreatedAt())
	}
	if !(updated.UpdatedAt() > created.UpdatedAt()) {
		t.Errorf("Expected updatedAt to advance: before=%s after=%s",
			created.UpdatedAt(), updated.UpdatedAt())
	}
}

// TestHandleUpdateRejections tests the 400 and 404 update paths
func TestHandleUpdateRejections(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	ctx := context.Background()

	created := decodeItemBody(t, postItem(t, h, `{"name":"widget"}`))

	// Only write-once attributes: rejected before updatedAt is added
	resp, _ := h.HandleUpdate(ctx, &lambda.Request{
		Method:     "PUT",
		PathParams: map[string]string{"id": created.PK()},
		Body:       []byte(`{"pk":"x","createdAt":"y"}`),
	})
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for immutable-only body, got %d", resp.StatusCode)
	}

	// Non-object body
	resp, _ = h.HandleUpdate(ctx, &lambda.Request{
		Method:     "PUT",
		PathParams: map[string]string{"id": created.PK()},
		Body:       []byte(`[1,2]`),
	})
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for non-object body, got %d", resp.StatusCode)
	}

	// Missing identifier
	resp, _ = h.HandleUpdate(ctx, &lambda.Request{
		Method: "PUT",
		Body:   []byte(`{"foo":"bar"}`),
	})
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for missing id, got %d", resp.StatusCode)
	}

	// Nonexistent identifier
	resp, _ = h.HandleUpdate(ctx, &lambda.Request{
		Method:     "PUT",
		PathParams: map[string]string{"id": "nope"},
		Body:       []byte(`{"foo":"bar"}`),
	})
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

// TestHandleDelete tests deletion including the non-idempotent repeat
func TestHandleDelete(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	ctx := context.Background()

	created := decodeItemBody(t, postItem(t, h, `{"name":"widget"}`))

	resp, _ := h.HandleDelete(ctx, &lambda.Request{
		Method:     "DELETE",
		PathParams: map[string]string{"id": created.PK()},
	})
	if resp.StatusCode != 204 {
		t.Fatalf("Expected status 204, got %d", resp.StatusCode)
	}
	var body StatusBody
	if err := json.Unmarshal(resp.Body, &body); err != nil || !body.OK {
		t.Errorf("Expected ok body, got %s", resp.Body)
	}

	// The record is gone
	resp, _ = h.HandleGet(ctx, &lambda.Request{
		Method:     "GET",
		PathParams: map[string]string{"id": created.PK()},
	})
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 after delete, got %d", resp.StatusCode)
	}

	// Deleting again is a 404, not an idempotent success
	resp, _ = h.HandleDelete(ctx, &lambda.Request{
		Method:     "DELETE",
		PathParams: map[string]string{"id": created.PK()},
	})
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 on repeated delete, got %d", resp.StatusCode)
	}
}

// TestHandleList tests the bounded list envelope
func TestHandleList(t *testing.T) {
	h, _, memStore := newTestHandlers(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		postItem(t, h, `{"name":"widget"}`)
	}

	resp, _ := h.HandleList(ctx, &lambda.Request{Method: "GET", Path: "/items"})
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body ListBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	if !body.OK {
		t.Error("Expected ok true")
	}
	if body.Count != 3 || body.Count != len(body.Items) {
		t.Errorf("Expected count 3 matching items, got count=%d len=%d", body.Count, len(body.Items))
	}

	memStore.FailWith("scan", errors.New("throughput exceeded"))
	resp, _ = h.HandleList(ctx, &lambda.Request{Method: "GET", Path: "/items"})
	if resp.StatusCode != 500 {
		t.Errorf("Expected status 500 on store fault, got %d", resp.StatusCode)
	}
}

// TestHandleHello tests the connectivity check responses
func TestHandleHello(t *testing.T) {
	_, hello, memStore := newTestHandlers(t)
	ctx := context.Background()

	resp, _ := hello.HandleHello(ctx, &lambda.Request{Method: "GET", Path: "/hello"})
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var body HelloBody
	if err := json.Unmarshal(resp.Body, &body); err != nil || !body.OK {
		t.Errorf("Expected ok hello body, got %s", resp.Body)
	}

	memStore.FailWith("ping", errors.New("store unreachable"))
	resp, _ = hello.HandleHello(ctx, &lambda.Request{Method: "GET", Path: "/hello"})
	if resp.StatusCode != 500 {
		t.Errorf("Expected status 500 on store fault, got %d", resp.StatusCode)
	}
}

// TestResponsesCarryFixedHeaders tests that every route returns the same
// header set
func TestResponsesCarryFixedHeaders(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	resp := postItem(t, h, `{"name":"widget"}`)
	for k, v := range ResponseHeaders() {
		if resp.Headers[k] != v {
			t.Errorf("Expected header %s '%s', got '%s'", k, v, resp.Headers[k])
		}
	}
}
