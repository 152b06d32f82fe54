// Package openai provides an OpenAI-backed completion and embedding
// provider for the engine.
//
// The client implements both llm.Client and llm.EmbeddingProvider so one
// instance can serve the router, the responders and the ingestion pipeline.
//
// Example usage:
//
//	client, err := openai.New("gpt-4o-mini")
//	if err != nil {
//		log.Fatal(err)
//	}
//	text, err := client.Complete(ctx, systemPrompt, userPrompt, 0.05)
package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// Client implements llm.Client and llm.EmbeddingProvider for OpenAI.
//
// Example:
//
//	client, _ := openai.New("gpt-4o-mini")
//	vec, _ := client.Embed(ctx, "some passage")
type Client struct {
	client *openai.Client
	model  shared.ChatModel
	config *Config
}

// Config holds OpenAI-specific configuration.
//
// All fields are optional with sensible defaults.
type Config struct {
	// Required. API key for OpenAI authentication
	APIKey string

	// Optional. Base URL for OpenAI API (defaults to official OpenAI API)
	BaseURL string

	// Optional. Embedding model used by Embed/EmbedBatch
	// Defaults to text-embedding-3-small (1536 dimensions)
	EmbeddingModel string

	// Optional. Maximum number of tokens in the response
	MaxTokens *int
}

// Option interface for functional options pattern
type Option interface {
	Apply(*Config)
}

type configOption struct {
	config *Config
}

func (o configOption) Apply(cfg *Config) {
	if o.config.APIKey != "" {
		cfg.APIKey = o.config.APIKey
	}
	if o.config.BaseURL != "" {
		cfg.BaseURL = o.config.BaseURL
	}
	if o.config.EmbeddingModel != "" {
		cfg.EmbeddingModel = o.config.EmbeddingModel
	}
	if o.config.MaxTokens != nil {
		cfg.MaxTokens = o.config.MaxTokens
	}
}

// WithConfig sets custom OpenAI configuration.
//
// Only non-zero fields override the defaults.
//
// Example:
//
//	client, _ := openai.New("gpt-4o-mini", openai.WithConfig(&openai.Config{APIKey: key}))
func WithConfig(cfg *Config) Option {
	return configOption{config: cfg}
}

// DefaultConfig returns sensible defaults for OpenAI.
//
// Reads the API key from the OPENAI_API_KEY environment variable.
func DefaultConfig() *Config {
	return &Config{
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel: "text-embedding-3-small",
	}
}

// New creates a new OpenAI client with optional configuration.
//
// Requires OPENAI_API_KEY environment variable or config.APIKey.
//
// Example:
//
//	client, err := openai.New("gpt-4o-mini")
//	if err != nil { log.Fatal(err) }
func New(model string, opts ...Option) (*Client, error) {
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt.Apply(config)
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set or provided in config")
	}

	clientOptions := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		clientOptions = append(clientOptions, option.WithBaseURL(config.BaseURL))
	}

	openaiClient := openai.NewClient(clientOptions...)

	return &Client{
		client: &openaiClient,
		model:  shared.ChatModel(model),
		config: config,
	}, nil
}

// Complete implements llm.Client using the chat completions API.
//
// Non-streaming by design: every call site in the engine consumes the full
// generation before acting on it.
func (c *Client) Complete(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(temperature)),
	}
	if c.config.MaxTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*c.config.MaxTokens))
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return response.Choices[0].Message.Content, nil
}

// Embed implements llm.EmbeddingProvider for a single text.
func (c *Client) Embed(ctx context.Context, text string) (llm.EmbeddingVector, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements llm.EmbeddingProvider for multiple texts.
//
// Results are returned in input order, as guaranteed by the embeddings API
// index field.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([]llm.EmbeddingVector, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	response, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.config.EmbeddingModel),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(response.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(response.Data), len(texts))
	}

	vectors := make([]llm.EmbeddingVector, len(texts))
	for _, item := range response.Data {
		vec := make(llm.EmbeddingVector, len(item.Embedding))
		for i, v := range item.Embedding {
			vec[i] = float32(v)
		}
		vectors[item.Index] = vec
	}

	return vectors, nil
}
