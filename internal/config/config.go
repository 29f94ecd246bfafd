// Package config provides configuration management for ideaforge.
// Configuration is loaded from a YAML file, with environment variables
// taking precedence. A .env file in the working directory is honored.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"

	"ideaforge/internal/types"
)

// Config is the complete ideaforge configuration.
type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	Remote   RemoteConfig   `yaml:"remote"`
	Storage  StorageConfig  `yaml:"storage"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LLMConfig configures model invocation.
type LLMConfig struct {
	Mode     string `yaml:"mode"` // openrouter or proxy
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	ProxyURL string `yaml:"proxy_url"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// RemoteConfig configures the remote document store.
type RemoteConfig struct {
	BaseURL   string `yaml:"base_url"`
	ProjectID string `yaml:"project_id"`
	APIKey    string `yaml:"api_key"`
	Timeout   string `yaml:"timeout"`
}

// StorageConfig configures the local database.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// DefaultsConfig seeds generation preferences for fields the user never set.
type DefaultsConfig struct {
	Theme      string `yaml:"theme"`
	SkillLevel string `yaml:"skill_level"`
	Count      int    `yaml:"count"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Mode:    "openrouter",
			Model:   "deepseek/deepseek-r1",
			Timeout: "2m",
		},
		Remote: RemoteConfig{
			Timeout: "30s",
		},
		Storage: StorageConfig{
			DatabasePath: defaultDatabasePath(),
		},
		Defaults: DefaultsConfig{
			Theme:      "General",
			SkillLevel: "Beginner",
			Count:      5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ideaforge/config.yaml"
	}
	return filepath.Join(home, ".ideaforge", "config.yaml")
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ideaforge/ideaforge.db"
	}
	return filepath.Join(home, ".ideaforge", "ideaforge.db")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		c.LLM.APIKey = key
		if c.LLM.Mode == "" {
			c.LLM.Mode = "openrouter"
		}
	}
	if url := os.Getenv("IDEAFORGE_PROXY_URL"); url != "" {
		c.LLM.ProxyURL = url
		c.LLM.Mode = "proxy"
	}
	if key := os.Getenv("IDEAFORGE_PROXY_KEY"); key != "" && c.LLM.Mode == "proxy" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("IDEAFORGE_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if url := os.Getenv("IDEAFORGE_REMOTE_URL"); url != "" {
		c.Remote.BaseURL = url
	}
	if id := os.Getenv("IDEAFORGE_PROJECT_ID"); id != "" {
		c.Remote.ProjectID = id
	}
	if key := os.Getenv("IDEAFORGE_REMOTE_KEY"); key != "" {
		c.Remote.APIKey = key
	}
	if path := os.Getenv("IDEAFORGE_DB"); path != "" {
		c.Storage.DatabasePath = path
	}
	if level := os.Getenv("IDEAFORGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Warnings returns human-readable configuration problems that do not prevent
// startup. A missing API key is reported loudly, never silently.
func (c *Config) Warnings() []string {
	var warnings []string
	switch c.LLM.Mode {
	case "proxy":
		if c.LLM.ProxyURL == "" {
			warnings = append(warnings, "proxy mode selected but no proxy URL configured; set IDEAFORGE_PROXY_URL")
		}
	default:
		if c.LLM.APIKey == "" {
			warnings = append(warnings, "no API key configured; generation will fail until OPENROUTER_API_KEY is set")
		}
	}
	if c.Remote.BaseURL == "" {
		warnings = append(warnings, "no remote store configured; ideas will be saved locally only")
	}
	return warnings
}

// GenerationDefaults returns the configured defaults as the lowest-precedence
// preference layer. Stored preferences and per-run overrides still win.
func (c *Config) GenerationDefaults() *types.GenerationPreferences {
	return &types.GenerationPreferences{
		Theme:      c.Defaults.Theme,
		SkillLevel: c.Defaults.SkillLevel,
		Count:      c.Defaults.Count,
	}
}

// LLMTimeout parses the invocation timeout, falling back to two minutes.
func (c *Config) LLMTimeout() time.Duration {
	if d, err := time.ParseDuration(c.LLM.Timeout); err == nil && d > 0 {
		return d
	}
	return 2 * time.Minute
}

// RemoteTimeout parses the remote store timeout, falling back to 30 seconds.
func (c *Config) RemoteTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Remote.Timeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}
