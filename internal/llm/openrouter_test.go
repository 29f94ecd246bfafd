package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenRouterClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Expected test-key authorization")
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["model"] != "deepseek/deepseek-r1" {
			t.Errorf("Expected model passthrough, got %v", body["model"])
		}
		if _, ok := body["response_format"]; !ok {
			t.Error("Expected response_format in request")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "gen-123",
			"choices": [
				{
					"message": {
						"content": "{\"projects\": []}"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewOpenRouterClient("test-key")
	client.baseURL = server.URL

	resp, err := client.Complete(context.Background(), "deepseek/deepseek-r1", "sys", "user")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp != `{"projects": []}` {
		t.Errorf("Unexpected response: %q", resp)
	}
}

func TestOpenRouterClient_Complete_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   ErrorKind
	}{
		{"auth", http.StatusUnauthorized, KindAuth},
		{"forbidden", http.StatusForbidden, KindAuth},
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"server fault", http.StatusInternalServerError, KindUnavailable},
		{"bad gateway", http.StatusBadGateway, KindUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error": {"message": "nope"}}`))
			}))
			defer server.Close()

			client := NewOpenRouterClient("test-key")
			client.baseURL = server.URL

			_, err := client.Complete(context.Background(), "openai/gpt-4o", "sys", "user")
			if !IsKind(err, tt.kind) {
				t.Errorf("Expected kind %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestOpenRouterClient_Complete_NetworkError(t *testing.T) {
	client := NewOpenRouterClient("test-key")
	client.baseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := client.Complete(context.Background(), "openai/gpt-4o", "sys", "user")
	if !IsKind(err, KindNetwork) {
		t.Errorf("Expected network error, got %v", err)
	}
}

func TestOpenRouterClient_Complete_MissingKey(t *testing.T) {
	client := NewOpenRouterClient("")
	_, err := client.Complete(context.Background(), "openai/gpt-4o", "sys", "user")
	if !IsKind(err, KindAuth) {
		t.Errorf("Expected auth error for missing key, got %v", err)
	}
}

func TestOpenRouterClient_Complete_EmbeddedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": {"message": "model overloaded"}}`))
	}))
	defer server.Close()

	client := NewOpenRouterClient("test-key")
	client.baseURL = server.URL

	_, err := client.Complete(context.Background(), "openai/gpt-4o", "sys", "user")
	if !IsKind(err, KindUnavailable) {
		t.Errorf("Expected unavailable for embedded error, got %v", err)
	}
}
