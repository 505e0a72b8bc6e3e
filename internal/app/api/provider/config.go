package provider

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Configuration represents the optional providers.yaml file carrying
// per-provider settings.
type Configuration struct {
	// Default provider to use when none is selected via environment
	DefaultProvider string `yaml:"default_provider"`

	// Provider-specific configurations keyed by provider type
	Providers map[string]Config `yaml:"providers"`
}

// Config represents configuration for a single provider
type Config struct {
	// Provider-specific settings (language, prompt, beam_size, base_url, ...)
	Settings map[string]interface{} `yaml:"settings"`
}

// ConfigSearchPaths returns the locations providers.yaml is looked up in,
// in priority order.
func ConfigSearchPaths() []string {
	return []string{
		"providers.yaml",
		filepath.Join(os.Getenv("HOME"), ".transcribe", "providers.yaml"),
	}
}

// LoadConfig reads a provider configuration file. A missing file yields an
// empty configuration, settings are all optional.
func LoadConfig(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Configuration{Providers: map[string]Config{}}, nil
		}
		return nil, fmt.Errorf("failed to read provider config %s: %w", path, err)
	}

	var cfg Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse provider config %s: %w", path, err)
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]Config{}
	}
	return &cfg, nil
}

// LoadConfigFromSearchPaths loads the first providers.yaml found, or an empty
// configuration when none exists.
func LoadConfigFromSearchPaths() (*Configuration, error) {
	for _, path := range ConfigSearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}
	return &Configuration{Providers: map[string]Config{}}, nil
}

// StringSetting extracts an optional string setting.
func StringSetting(settings map[string]interface{}, key string) string {
	if settings == nil {
		return ""
	}
	if v, ok := settings[key].(string); ok {
		return v
	}
	return ""
}

// IntSetting extracts an optional integer setting, yaml numbers decode as int.
func IntSetting(settings map[string]interface{}, key string, fallback int) int {
	if settings == nil {
		return fallback
	}
	switch v := settings[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}
