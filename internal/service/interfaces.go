package service

import (
	"context"

	"github.com/platewise/recipe-gateway/internal/types"
)

// RecipeSource generates a structured recipe for a food name. Both recipe
// schema variants live behind this interface so the handler never cares
// which one is active.
type RecipeSource interface {
	Generate(ctx context.Context, foodName string) (*types.Recipe, error)
}

// ImageSource finds a representative image for a free-text query.
type ImageSource interface {
	Lookup(ctx context.Context, query string) (*types.ImageResult, error)
}
