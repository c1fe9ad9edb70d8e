package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrNotFound indicates no config file has been written yet.
var ErrNotFound = errors.New("config file not found")

// persisted tool configuration
type Config struct {
	Provider        string `json:"ai_provider"`
	APIKey          string `json:"api_key"`
	Model           string `json:"model"`
	BaseURL         string `json:"base_url,omitempty"`
	DefaultLanguage string `json:"default_language,omitempty"`
	ProjectPath     string `json:"project_path,omitempty"`
}

// Path returns the config file location, creating nothing.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find config directory: %w", err)
	}
	return filepath.Join(dir, "rosetta", "config.json"), nil
}

// Exists reports whether a config file is present.
func Exists() bool {
	path, err := Path()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config with owner-only permissions since it holds
// API keys.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// UpdateProvider switches the active provider and its credentials in
// one step and persists the result.
func (c *Config) UpdateProvider(provider, apiKey, model, baseURL string) error {
	c.Provider = provider
	c.APIKey = apiKey
	c.Model = model
	c.BaseURL = baseURL
	return c.Save()
}

func (c *Config) UpdateDefaultLanguage(language string) error {
	c.DefaultLanguage = language
	return c.Save()
}

func (c *Config) UpdateProjectPath(path string) error {
	c.ProjectPath = path
	return c.Save()
}

// environment overrides, including provider API keys
type Env struct {
	Provider        string `env:"ROSETTA_PROVIDER"`
	Model           string `env:"ROSETTA_MODEL"`
	BaseURL         string `env:"ROSETTA_BASE_URL"`
	DefaultLanguage string `env:"ROSETTA_DEFAULT_LANGUAGE"`
	OpenAIKey       string `env:"OPENAI_API_KEY"`
	AnthropicKey    string `env:"ANTHROPIC_API_KEY"`
	GeminiKey       string `env:"GEMINI_API_KEY"`
	XAIKey          string `env:"XAI_API_KEY"`
}

func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &e, nil
}

// KeyFor returns the environment API key for a provider name, if set.
func (e *Env) KeyFor(provider string) string {
	switch provider {
	case "openai":
		return e.OpenAIKey
	case "anthropic":
		return e.AnthropicKey
	case "gemini":
		return e.GeminiKey
	case "grok":
		return e.XAIKey
	default:
		return ""
	}
}

// MaskKey hides most of an API key for display.
func MaskKey(key string) string {
	if key == "" {
		return "<not set>"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
