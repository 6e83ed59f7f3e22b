package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/platewise/recipe-gateway/config"
	"github.com/platewise/recipe-gateway/internal/types"
)

// searchResponse mirrors the subset of the image-search payload the gateway reads.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Link  string `json:"link"`
	Image struct {
		ThumbnailLink string `json:"thumbnailLink"`
	} `json:"image"`
}

// ImageSearchClient looks up images through a custom-search API.
type ImageSearchClient struct {
	apiKey   string
	engineID string
	apiURL   string
	client   *http.Client
}

// NewImageSearchClient creates a new ImageSearchClient instance
func NewImageSearchClient(cfg *config.Config) *ImageSearchClient {
	return &ImageSearchClient{
		apiKey:   cfg.SearchAPIKey,
		engineID: cfg.SearchEngineID,
		apiURL:   cfg.SearchAPIURL,
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Lookup runs a single image-typed search and returns the link and thumbnail
// of the first result. No pagination beyond the first result.
func (c *ImageSearchClient) Lookup(ctx context.Context, query string) (*types.ImageResult, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)
	params.Add("q", query)
	params.Add("searchType", "image")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, WrapError(KindUpstreamError, "failed to create search request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, WrapError(KindUpstreamError, "image search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewError(KindUpstreamError, fmt.Sprintf("image search failed with status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, WrapError(KindParseError, "failed to decode search response", err)
	}

	if len(result.Items) == 0 {
		return nil, NewError(KindNoResults, fmt.Sprintf("no results found for %q", query))
	}

	first := result.Items[0]
	return &types.ImageResult{
		URL:   first.Link,
		Thumb: first.Image.ThumbnailLink,
	}, nil
}
