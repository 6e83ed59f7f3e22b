package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kaptinlin/jsonrepair"

	"github.com/platewise/recipe-gateway/config"
	"github.com/platewise/recipe-gateway/internal/types"
)

const recipeSystemPrompt = "You are a professional chef and a trusted source of recipes. " +
	"Given a dish, respond with a single complete recipe for it."

// Fixed sampling parameters for recipe generation.
const (
	completionTemperature = 1.0
	completionTopP        = 1.0
	completionMaxTokens   = 2048
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat-completion API
type Request struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	TopP           float64         `json:"top_p"`
	MaxTokens      int             `json:"max_tokens"`
}

// ResponseFormat constrains the completion output shape.
type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

// JSONSchema is the named, strict schema carried by a ResponseFormat.
type JSONSchema struct {
	Name   string  `json:"name"`
	Schema *Schema `json:"schema"`
	Strict bool    `json:"strict,omitempty"`
}

// Response mirrors the subset of the chat-completion payload the gateway reads.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Choice is a single completion candidate.
type Choice struct {
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"` // "stop", "length", "content_filter"
}

// ResponseMessage carries either schema-conformant content or a refusal.
type ResponseMessage struct {
	Content string `json:"content,omitempty"`
	Refusal string `json:"refusal,omitempty"`
}

// CompletionClient generates recipes through a chat-completion API
// constrained by a strict JSON schema.
type CompletionClient struct {
	apiKey string
	apiURL string
	model  string
	schema *Schema
	client *http.Client
}

// NewCompletionClient creates a new CompletionClient instance
func NewCompletionClient(cfg *config.Config) *CompletionClient {
	return &CompletionClient{
		apiKey: cfg.CompletionAPIKey,
		apiURL: cfg.CompletionAPIURL,
		model:  cfg.CompletionModel,
		schema: RecipeSchema(SchemaVariant(cfg.RecipeSchemaVariant)),
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Generate issues a single structured-generation request for the dish and
// returns the parsed recipe. Truncation, refusal and empty completions are
// checked in that order before any parsing happens.
func (c *CompletionClient) Generate(ctx context.Context, foodName string) (*types.Recipe, error) {
	reqBody := Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: recipeSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("recipe of %s", foodName)},
		},
		ResponseFormat: &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   "recipe",
				Schema: c.schema,
				Strict: true,
			},
		},
		Temperature: completionTemperature,
		TopP:        completionTopP,
		MaxTokens:   completionMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, WrapError(KindUpstreamError, "failed to build completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, WrapError(KindUpstreamError, "failed to create completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, WrapError(KindUpstreamError, "completion request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WrapError(KindUpstreamError, "failed to read completion response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewError(KindUpstreamError, fmt.Sprintf("completion service returned status %d", resp.StatusCode))
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, WrapError(KindParseError, "failed to decode completion response", err)
	}

	if len(result.Choices) == 0 {
		return nil, NewError(KindEmptyResponse, "empty response from completion service")
	}

	choice := result.Choices[0]
	switch {
	case choice.FinishReason == "length":
		return nil, NewError(KindIncompleteGeneration, "incomplete response: generation stopped at the output length limit")
	case choice.Message.Refusal != "":
		return nil, NewError(KindRefused, "recipe generation refused: "+choice.Message.Refusal)
	case choice.Message.Content == "":
		return nil, NewError(KindEmptyResponse, "empty response from completion service")
	}

	recipe, err := parseRecipe(choice.Message.Content)
	if err != nil {
		return nil, WrapError(KindParseError, "failed to parse generated recipe", err)
	}

	return recipe, nil
}

// parseRecipe decodes schema-constrained content, repairing malformed JSON
// before giving up.
func parseRecipe(content string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := json.Unmarshal([]byte(content), &recipe); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(repaired), &recipe); err != nil {
			return nil, err
		}
	}
	return &recipe, nil
}
