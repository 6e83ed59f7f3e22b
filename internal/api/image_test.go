package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/recipe-gateway/internal/service"
	"github.com/platewise/recipe-gateway/internal/types"
)

type stubImageSource struct {
	result *types.ImageResult
	err    error
	called bool
}

func (s *stubImageSource) Lookup(ctx context.Context, query string) (*types.ImageResult, error) {
	s.called = true
	return s.result, s.err
}

func setupImageRouter(source service.ImageSource) *gin.Engine {
	router := gin.New()
	NewImageHandler(source).RegisterRoutes(router)
	return router
}

func TestGetImageMissingQuery(t *testing.T) {
	source := &stubImageSource{}
	router := setupImageRouter(source)

	for _, target := range []string{"/getImage", "/getImage?foodOrIngName="} {
		w := performGet(router, target)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"foodOrIngName parameter is required"}`, w.Body.String())
		assert.False(t, source.called)
	}
}

func TestGetImageSuccess(t *testing.T) {
	router := setupImageRouter(&stubImageSource{
		result: &types.ImageResult{URL: "http://a", Thumb: "http://b"},
	})

	w := performGet(router, "/getImage?foodOrIngName=tomato")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"http://a","thumb":"http://b"}`, w.Body.String())
}

func TestGetImageNoResults(t *testing.T) {
	router := setupImageRouter(&stubImageSource{
		err: service.NewError(service.KindNoResults, `no results found for "tomato"`),
	})

	w := performGet(router, "/getImage?foodOrIngName=tomato")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "no results")
}

func TestGetImageUpstreamError(t *testing.T) {
	router := setupImageRouter(&stubImageSource{
		err: service.NewError(service.KindUpstreamError, "image search failed with status 403"),
	})

	w := performGet(router, "/getImage?foodOrIngName=tomato")

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "403")
}
