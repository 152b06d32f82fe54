package llm

import (
	"context"
	"fmt"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	response     string
	responses    []string // Multiple responses for sequential calls
	callCount    int      // Track which response to return
	shouldError  bool
	errorMessage string

	// LastSystem and LastPrompt record the most recent call for assertions.
	LastSystem      string
	LastPrompt      string
	LastTemperature float32
}

// NewMockClient creates a new mock client returning a fixed response
func NewMockClient(response string) *MockClient {
	return &MockClient{response: response}
}

// NewMockClientWithResponses creates a mock client with sequential responses
func NewMockClientWithResponses(responses []string) *MockClient {
	return &MockClient{responses: responses}
}

// NewMockClientWithError creates a mock client that always fails
func NewMockClientWithError(errorMessage string) *MockClient {
	return &MockClient{shouldError: true, errorMessage: errorMessage}
}

// Complete implements the Client interface
func (m *MockClient) Complete(_ context.Context, system, prompt string, temperature float32) (string, error) {
	m.LastSystem = system
	m.LastPrompt = prompt
	m.LastTemperature = temperature

	if m.shouldError {
		return "", fmt.Errorf("mock error: %s", m.errorMessage)
	}

	if len(m.responses) > 0 {
		response := m.responses[m.callCount%len(m.responses)]
		m.callCount++
		return response, nil
	}

	return m.response, nil
}

// CallCount returns how many completions have been served
func (m *MockClient) CallCount() int {
	return m.callCount
}

// MockEmbeddingProvider implements EmbeddingProvider for testing.
// Returns a constant unit vector unless configured to fail.
type MockEmbeddingProvider struct {
	Dimension   int
	shouldError bool
	calls       int
}

// NewMockEmbeddingProvider creates a mock embedding provider
func NewMockEmbeddingProvider() *MockEmbeddingProvider {
	return &MockEmbeddingProvider{Dimension: EmbeddingDimension}
}

// NewMockEmbeddingProviderWithError creates a mock that always fails
func NewMockEmbeddingProviderWithError() *MockEmbeddingProvider {
	return &MockEmbeddingProvider{Dimension: EmbeddingDimension, shouldError: true}
}

// Embed implements the EmbeddingProvider interface
func (m *MockEmbeddingProvider) Embed(_ context.Context, _ string) (EmbeddingVector, error) {
	if m.shouldError {
		return nil, fmt.Errorf("mock embedding error")
	}
	m.calls++
	vec := make(EmbeddingVector, m.Dimension)
	vec[0] = 1.0
	return vec, nil
}

// EmbedBatch implements the EmbeddingProvider interface
func (m *MockEmbeddingProvider) EmbedBatch(ctx context.Context, texts []string) ([]EmbeddingVector, error) {
	vectors := make([]EmbeddingVector, 0, len(texts))
	for _, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, vec)
	}
	return vectors, nil
}

// Calls returns how many embeddings have been generated
func (m *MockEmbeddingProvider) Calls() int {
	return m.calls
}
