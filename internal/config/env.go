package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultModelTier is used when WHISPER_MODEL is not set. Small gives good
	// accuracy on CPU at a reasonable cost.
	DefaultModelTier = "small"

	// DefaultProviderName is used when TRANSCRIBE_PROVIDER is not set.
	DefaultProviderName = "whisper_cpp"
)

// KnownModelTiers lists the model size tiers the whisper family of engines
// ships. Unknown values are passed through, the engine surfaces its own error.
var KnownModelTiers = []string{
	"tiny", "base", "small", "medium", "large-v1", "large-v2", "large-v3",
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error, the environment might be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// ModelTier returns the model size tier selected via WHISPER_MODEL,
// defaulting to "small".
func ModelTier() string {
	tier := strings.TrimSpace(os.Getenv("WHISPER_MODEL"))
	if tier == "" {
		return DefaultModelTier
	}
	return tier
}

// IsKnownModelTier reports whether tier is one of the tiers the whisper
// engines ship.
func IsKnownModelTier(tier string) bool {
	for _, known := range KnownModelTiers {
		if tier == known {
			return true
		}
	}
	return false
}

// ProviderName returns the provider selected via TRANSCRIBE_PROVIDER,
// defaulting to the local whisper.cpp engine.
func ProviderName() string {
	name := strings.TrimSpace(os.Getenv("TRANSCRIBE_PROVIDER"))
	if name == "" {
		return DefaultProviderName
	}
	return name
}

// MetricsReportEnabled reports whether a metrics summary should be written
// to stderr after a run, toggled via TRANSCRIBE_METRICS_REPORT.
func MetricsReportEnabled() bool {
	v := strings.TrimSpace(os.Getenv("TRANSCRIBE_METRICS_REPORT"))
	return v == "1" || strings.EqualFold(v, "true")
}

// DatabaseDSN returns the optional Postgres DSN for the run history store.
// An empty value means the default local sqlite file is used.
func DatabaseDSN() string {
	return strings.TrimSpace(os.Getenv("TRANSCRIBE_DB_DSN"))
}
