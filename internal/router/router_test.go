package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/recipe-gateway/config"
	"github.com/platewise/recipe-gateway/internal/api"
	"github.com/platewise/recipe-gateway/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// setupGateway wires real clients against fake upstreams, the way the server does.
func setupGateway(t *testing.T, completionBody, searchBody string) *gin.Engine {
	t.Helper()

	completionUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody)
	}))
	t.Cleanup(completionUpstream.Close)

	searchUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, searchBody)
	}))
	t.Cleanup(searchUpstream.Close)

	cfg := &config.Config{
		CompletionAPIKey:    "key",
		CompletionAPIURL:    completionUpstream.URL,
		CompletionModel:     "gpt-4o-mini",
		SearchAPIKey:        "key",
		SearchEngineID:      "engine",
		SearchAPIURL:        searchUpstream.URL,
		RecipeSchemaVariant: "basic",
		HTTPTimeout:         5 * time.Second,
	}

	return SetupRouter(
		api.NewRecipeHandler(service.NewCompletionClient(cfg)),
		api.NewImageHandler(service.NewImageSearchClient(cfg)),
	)
}

func performGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetRecipeEndToEnd(t *testing.T) {
	content := `{\"name\":\"Lasagna\",\"description\":\"Layered pasta bake\",\"ingredients\":[{\"name\":\"pasta\",\"amount\":\"12 sheets\",\"description\":\"dried\"}],\"instructions\":[\"Layer\",\"Bake\"]}`
	router := setupGateway(t,
		fmt.Sprintf(`{"choices":[{"finish_reason":"stop","message":{"content":"%s"}}]}`, content),
		`{"items":[]}`,
	)

	w := performGet(router, "/getRecipe?foodName=lasagna")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "Lasagna",
		"description": "Layered pasta bake",
		"ingredients": [{"name": "pasta", "amount": "12 sheets", "description": "dried"}],
		"instructions": ["Layer", "Bake"]
	}`, w.Body.String())
	assert.Contains(t, w.Body.String(), "\n    ", "expected indented JSON")
}

func TestGetRecipeEndToEndMissingParam(t *testing.T) {
	router := setupGateway(t, `{"choices":[]}`, `{"items":[]}`)

	w := performGet(router, "/getRecipe")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"foodName parameter is required"}`, w.Body.String())
}

func TestGetImageEndToEnd(t *testing.T) {
	router := setupGateway(t, `{"choices":[]}`,
		`{"items":[{"link":"http://a","image":{"thumbnailLink":"http://b"}}]}`)

	w := performGet(router, "/getImage?foodOrIngName=tomato")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"http://a","thumb":"http://b"}`, w.Body.String())
}

func TestUnknownPath(t *testing.T) {
	router := setupGateway(t, `{"choices":[]}`, `{"items":[]}`)

	w := performGet(router, "/foo")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", w.Body.String())
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	router := setupGateway(t, `{"choices":[]}`,
		`{"items":[{"link":"http://a","image":{"thumbnailLink":"http://b"}}]}`)

	for _, target := range []string{"/getImage?foodOrIngName=tomato", "/getRecipe"} {
		w := performGet(router, target)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), "missing CORS header on %s", target)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupGateway(t, `{"choices":[]}`, `{"items":[]}`)

	req := httptest.NewRequest(http.MethodOptions, "/getRecipe", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	require.Less(t, w.Code, 300)
}

func TestRequestIDAttached(t *testing.T) {
	router := setupGateway(t, `{"choices":[]}`, `{"items":[]}`)

	w := performGet(router, "/getRecipe")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
