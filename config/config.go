package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the gateway.
type Config struct {
	// Server configuration
	ServerHost string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	// Completion service configuration
	CompletionAPIKey string `env:"COMPLETION_API_KEY"`
	CompletionAPIURL string `env:"COMPLETION_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	CompletionModel  string `env:"COMPLETION_MODEL" envDefault:"gpt-4o-mini"`

	// Image search configuration
	SearchAPIKey   string `env:"SEARCH_API_KEY"`
	SearchEngineID string `env:"SEARCH_ENGINE_ID"`
	SearchAPIURL   string `env:"SEARCH_API_URL" envDefault:"https://www.googleapis.com/customsearch/v1"`

	// RecipeSchemaVariant selects the recipe shape the completion service is
	// constrained to: "basic" or "illustrated".
	RecipeSchemaVariant string `env:"RECIPE_SCHEMA_VARIANT" envDefault:"basic"`

	// HTTPTimeout bounds every outbound call. Upstreams occasionally stall;
	// without this the request would stall with them.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
}

// Load creates a new Config instance with values from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
