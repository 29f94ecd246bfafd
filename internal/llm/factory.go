package llm

import (
	"fmt"
	"os"
	"time"
)

// Mode selects which invocation path backs the adapter.
type Mode string

const (
	ModeOpenRouter Mode = "openrouter" // direct third-party endpoint
	ModeProxy      Mode = "proxy"      // backend-proxied completion
)

// BackendConfig is the resolved invocation configuration. Direct-vs-proxied
// is a configuration detail; both modes satisfy the same Client contract.
type BackendConfig struct {
	Mode     Mode
	APIKey   string
	BaseURL  string // override for the direct endpoint, empty for the default
	ProxyURL string
	Timeout  time.Duration
}

// DetectBackend resolves the invocation backend from environment variables.
// A configured proxy takes precedence; otherwise an OpenRouter key selects
// the direct path.
func DetectBackend() (BackendConfig, error) {
	if proxyURL := os.Getenv("IDEAFORGE_PROXY_URL"); proxyURL != "" {
		return BackendConfig{
			Mode:     ModeProxy,
			ProxyURL: proxyURL,
			APIKey:   os.Getenv("IDEAFORGE_PROXY_KEY"),
		}, nil
	}
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return BackendConfig{Mode: ModeOpenRouter, APIKey: key}, nil
	}
	return BackendConfig{}, fmt.Errorf("no invocation backend configured; set OPENROUTER_API_KEY or IDEAFORGE_PROXY_URL")
}

// NewClientFromConfig creates a completion client for the configured mode.
func NewClientFromConfig(cfg BackendConfig) (Client, error) {
	switch cfg.Mode {
	case ModeOpenRouter, "":
		c := DefaultOpenRouterConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			c.Timeout = cfg.Timeout
		}
		return NewOpenRouterClientWithConfig(c), nil

	case ModeProxy:
		c := DefaultProxyConfig(cfg.ProxyURL)
		c.APIKey = cfg.APIKey
		if cfg.Timeout > 0 {
			c.Timeout = cfg.Timeout
		}
		return NewProxyClientWithConfig(c), nil

	default:
		return nil, fmt.Errorf("unknown invocation mode: %s (valid: openrouter, proxy)", cfg.Mode)
	}
}
