package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validSchemaVariants lists the recipe schema variants the completion client
// knows how to constrain.
var validSchemaVariants = map[string]bool{
	"basic":       true,
	"illustrated": true,
}

// ValidateConfig checks that every credential and selector the gateway needs
// at runtime is present and well-formed.
func ValidateConfig(cfg *Config) error {
	if cfg.CompletionAPIKey == "" {
		return ValidationError{Field: "COMPLETION_API_KEY", Message: "is required"}
	}
	if cfg.CompletionAPIURL == "" {
		return ValidationError{Field: "COMPLETION_API_URL", Message: "is required"}
	}
	if cfg.CompletionModel == "" {
		return ValidationError{Field: "COMPLETION_MODEL", Message: "is required"}
	}
	if cfg.SearchAPIKey == "" {
		return ValidationError{Field: "SEARCH_API_KEY", Message: "is required"}
	}
	if cfg.SearchEngineID == "" {
		return ValidationError{Field: "SEARCH_ENGINE_ID", Message: "is required"}
	}
	if cfg.SearchAPIURL == "" {
		return ValidationError{Field: "SEARCH_API_URL", Message: "is required"}
	}
	if !validSchemaVariants[cfg.RecipeSchemaVariant] {
		return ValidationError{Field: "RECIPE_SCHEMA_VARIANT", Message: fmt.Sprintf("unknown variant %q", cfg.RecipeSchemaVariant)}
	}
	if cfg.HTTPTimeout <= 0 {
		return ValidationError{Field: "HTTP_TIMEOUT", Message: "must be positive"}
	}
	return nil
}
