package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProxyClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/complete" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "shared-secret" {
			t.Error("Expected pre-shared key header")
		}

		var body proxyRequest
		json.NewDecoder(r.Body).Decode(&body)
		if body.Model != "openai/gpt-4o-mini" {
			t.Errorf("Expected model passthrough, got %q", body.Model)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": "[]"}`))
	}))
	defer server.Close()

	client := NewProxyClientWithConfig(ProxyConfig{APIKey: "shared-secret", BaseURL: server.URL})

	resp, err := client.Complete(context.Background(), "openai/gpt-4o-mini", "sys", "user")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp != "[]" {
		t.Errorf("Unexpected response: %q", resp)
	}
}

func TestProxyClient_Complete_DetailError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "EMERGENT_LLM_KEY not found in environment"}`))
	}))
	defer server.Close()

	client := NewProxyClient(server.URL)

	_, err := client.Complete(context.Background(), "openai/gpt-4o-mini", "sys", "user")
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("Expected unavailable, got %v", err)
	}
	apiErr := err.(*APIError)
	if apiErr.Message != "EMERGENT_LLM_KEY not found in environment" {
		t.Errorf("Expected detail to be surfaced, got %q", apiErr.Message)
	}
}

func TestProxyClient_Complete_NoURL(t *testing.T) {
	client := NewProxyClient("")
	_, err := client.Complete(context.Background(), "openai/gpt-4o-mini", "sys", "user")
	if !IsKind(err, KindNetwork) {
		t.Errorf("Expected network error for missing proxy URL, got %v", err)
	}
}
