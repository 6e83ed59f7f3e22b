package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/recipe-gateway/config"
)

func TestNewWiresServer(t *testing.T) {
	cfg := &config.Config{
		ServerHost:          "127.0.0.1",
		ServerPort:          "0",
		CompletionAPIKey:    "key",
		CompletionAPIURL:    "http://localhost:1",
		CompletionModel:     "gpt-4o-mini",
		SearchAPIKey:        "key",
		SearchEngineID:      "engine",
		SearchAPIURL:        "http://localhost:1",
		RecipeSchemaVariant: "basic",
		HTTPTimeout:         time.Second,
	}

	srv := New(cfg)
	require.NotNil(t, srv)
	require.NotNil(t, srv.http)
	assert.Equal(t, "127.0.0.1:0", srv.http.Addr)
	assert.NotNil(t, srv.http.Handler)

	assert.NoError(t, srv.Shutdown(context.Background()))
}
