// Package llm defines the completion and embedding contracts the engine
// consumes. Concrete providers live in the openai and ollama subpackages;
// every component that talks to a language model depends only on these
// interfaces.
package llm

import "context"

// EmbeddingVector represents a fixed-length vector embedding.
type EmbeddingVector []float32

// EmbeddingDimension is the vector width produced by the supported
// embedding models and declared on every vector collection.
const EmbeddingDimension = 1536

// Client interface for completion providers.
//
// A single prompt in, generated text out. Providers surface transport and
// rate-limit failures as errors; callers decide how to degrade.
type Client interface {
	// Complete generates text from a system prompt and user prompt at the
	// given sampling temperature.
	Complete(ctx context.Context, system, prompt string, temperature float32) (string, error)
}

// EmbeddingProvider interface for generating embeddings.
type EmbeddingProvider interface {
	// Embed generates an embedding for a single text.
	Embed(ctx context.Context, text string) (EmbeddingVector, error)

	// EmbedBatch generates embeddings for multiple texts in one request.
	// Results are returned in input order.
	EmbedBatch(ctx context.Context, texts []string) ([]EmbeddingVector, error)
}
