// Package ollama provides a locally-hosted completion and embedding
// provider backed by an Ollama server.
//
// Useful as a drop-in alternative to the OpenAI provider for development
// and offline deployments; selected through the engine configuration.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// Client implements llm.Client and llm.EmbeddingProvider for Ollama.
//
// Example:
//
//	client, _ := ollama.New("llama3.2")
//	text, _ := client.Complete(ctx, system, prompt, 0)
type Client struct {
	client *api.Client
	model  string
	config *Config
}

// Config holds Ollama-specific configuration.
type Config struct {
	// Optional. Ollama server host (defaults to localhost:11434 or OLLAMA_HOST env)
	Host string

	// Optional. Embedding model used by Embed/EmbedBatch
	// Defaults to the chat model
	EmbeddingModel string

	// Optional. Maximum number of tokens in the response
	MaxTokens *int

	// Optional. Controls how long the model stays loaded in memory (e.g. "5m", "1h")
	KeepAlive string
}

// Option interface for functional options pattern
type Option interface {
	Apply(*Config)
}

type configOption struct{ config *Config }

func (o configOption) Apply(cfg *Config) {
	if o.config.Host != "" {
		cfg.Host = o.config.Host
	}
	if o.config.EmbeddingModel != "" {
		cfg.EmbeddingModel = o.config.EmbeddingModel
	}
	if o.config.MaxTokens != nil {
		cfg.MaxTokens = o.config.MaxTokens
	}
	if o.config.KeepAlive != "" {
		cfg.KeepAlive = o.config.KeepAlive
	}
}

// WithConfig sets custom Ollama configuration
func WithConfig(cfg *Config) Option {
	return configOption{config: cfg}
}

// DefaultConfig returns sensible defaults for Ollama
func DefaultConfig() *Config {
	return &Config{
		Host:      "", // Will use ClientFromEnvironment() default
		KeepAlive: "5m",
	}
}

// New creates a new Ollama client with optional configuration.
//
// Example:
//
//	client, err := ollama.New("llama3.2", ollama.WithConfig(&ollama.Config{
//		Host: "http://192.168.1.100:11434",
//	}))
func New(model string, opts ...Option) (*Client, error) {
	if model == "" {
		model = "llama3.2" // Default model
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt.Apply(config)
	}

	var client *api.Client
	if config.Host == "" {
		// Use environment-based client (checks OLLAMA_HOST env var)
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create client from environment: %w", err)
		}
	} else {
		u, err := url.Parse(config.Host)
		if err != nil {
			return nil, fmt.Errorf("invalid host URL: %w", err)
		}
		client = api.NewClient(u, http.DefaultClient)
	}

	return &Client{
		client: client,
		model:  model,
		config: config,
	}, nil
}

// Complete implements llm.Client using the Ollama chat API.
//
// The request is issued non-streaming and the full message content is
// returned once generation finishes.
func (c *Client) Complete(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Stream:  &stream,
		Options: map[string]any{"temperature": temperature},
	}
	if c.config.MaxTokens != nil {
		req.Options["num_predict"] = *c.config.MaxTokens
	}
	if c.config.KeepAlive != "" {
		req.Options["keep_alive"] = c.config.KeepAlive
	}

	var response strings.Builder
	responseFunc := func(resp api.ChatResponse) error {
		response.WriteString(resp.Message.Content)
		return nil
	}

	if err := c.client.Chat(ctx, req, responseFunc); err != nil {
		return "", fmt.Errorf("failed to chat with ollama: %w", err)
	}

	return response.String(), nil
}

// Embed implements llm.EmbeddingProvider for a single text
func (c *Client) Embed(ctx context.Context, text string) (llm.EmbeddingVector, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements llm.EmbeddingProvider for multiple texts
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([]llm.EmbeddingVector, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := c.config.EmbeddingModel
	if model == "" {
		model = c.model
	}

	resp, err := c.client.Embed(ctx, &api.EmbedRequest{
		Model: model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), len(texts))
	}

	vectors := make([]llm.EmbeddingVector, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		vectors[i] = llm.EmbeddingVector(emb)
	}

	return vectors, nil
}
