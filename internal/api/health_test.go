package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	svc, l, _ := setupTest(t)
	l.AddTransaction("alice", "bob", 5)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	svc.HandleHealth(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", resp.Status)
	}

	var body struct {
		NodeID              string `json:"node_id"`
		ChainLength         int    `json:"chain_length"`
		PendingTransactions int    `json:"pending_transactions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if body.NodeID != "test-node-id" {
		t.Errorf("Unexpected node id: %q", body.NodeID)
	}
	if body.ChainLength != 1 || body.PendingTransactions != 1 {
		t.Errorf("Unexpected counters: %+v", body)
	}
}

func TestHandleLogs(t *testing.T) {
	svc, _, _ := setupTest(t)
	svc.logger.Info("first")
	svc.logger.Info("second")

	req := httptest.NewRequest(http.MethodGet, "/logs?n=1", nil)
	w := httptest.NewRecorder()
	svc.HandleLogs(w, req)

	var body []struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body) != 1 || body[0].Text != "second" {
		t.Errorf("Expected only the newest message, got %+v", body)
	}
}
