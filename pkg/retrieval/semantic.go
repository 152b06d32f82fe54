package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// defaultSemanticK is the candidate count for semantic search.
const defaultSemanticK = 5

// noOutputSentinel marks a compression result carrying no relevant
// sentences; such candidates are discarded.
const noOutputSentinel = "NO_OUTPUT"

// compressionSystemPrompt instructs the extraction pass. The model must
// quote relevant context verbatim or emit the sentinel.
const compressionSystemPrompt = `Given a user question and a passage of context, extract any part of the passage AS IS that is relevant to answering the question. If none of the passage is relevant, return ` + noOutputSentinel + `.

Remember, DO NOT edit the extracted parts of the passage.`

// Semantic retrieves passages by vector similarity with an optional
// per-candidate LLM compression pass.
//
// Example:
//
//	strategy := retrieval.NewSemantic(retrieval.SemanticConfig{
//		Store:      store,
//		Embedder:   client,
//		Compressor: client,
//		Collection: knowledge.PhysicalName("rehberlik"),
//		QueryPrefix: "Eğitim ve kariyer rehberliği:",
//	})
type Semantic struct {
	store      knowledge.Store
	embedder   llm.EmbeddingProvider
	compressor llm.Client
	collection string
	prefix     string
	k          int
	log        zerolog.Logger
}

// SemanticConfig configures a semantic strategy.
type SemanticConfig struct {
	// Required. Vector store holding the strategy's collection
	Store knowledge.Store

	// Required. Embedding provider for query vectors
	Embedder llm.EmbeddingProvider

	// Optional. Compression model; nil degrades to raw candidates
	Compressor llm.Client

	// Required. Physical collection name to search
	Collection string

	// Optional. Framing phrase prepended to the query before embedding
	QueryPrefix string

	// Optional. Candidate count (defaults to 5)
	K int

	// Optional. Logger
	Logger *zerolog.Logger
}

// NewSemantic creates a semantic retrieval strategy.
func NewSemantic(config SemanticConfig) *Semantic {
	k := config.K
	if k <= 0 {
		k = defaultSemanticK
	}
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &Semantic{
		store:      config.Store,
		embedder:   config.Embedder,
		compressor: config.Compressor,
		collection: config.Collection,
		prefix:     config.QueryPrefix,
		k:          k,
		log:        logger,
	}
}

// Retrieve embeds the (framed) query, searches the collection and runs
// the compression pass over each candidate.
//
// Search and embedding failures return an empty list, not an error.
func (s *Semantic) Retrieve(ctx context.Context, query string) ([]Passage, error) {
	framed := query
	if s.prefix != "" {
		framed = s.prefix + " " + query
	}

	vector, err := s.embedder.Embed(ctx, framed)
	if err != nil {
		s.log.Warn().Err(err).Str("collection", s.collection).Msg("query embedding failed")
		return nil, nil
	}

	hits, err := s.store.Search(ctx, s.collection, vector, s.k, "")
	if err != nil {
		s.log.Warn().Err(err).Str("collection", s.collection).Msg("vector search failed")
		return nil, nil
	}

	passages := make([]Passage, 0, len(hits))
	for _, hit := range hits {
		text, keep := s.compress(ctx, query, hit.Text)
		if !keep {
			continue
		}
		passages = append(passages, Passage{
			Text:     text,
			Metadata: hit.Metadata,
			Score:    hit.Score,
			Scored:   true,
		})
	}
	return passages, nil
}

// compress extracts the query-relevant sentences from a candidate.
// Without a compressor the raw text passes through; a compression error
// also keeps the raw text rather than losing the candidate.
func (s *Semantic) compress(ctx context.Context, query, text string) (string, bool) {
	if s.compressor == nil {
		return text, true
	}

	prompt := fmt.Sprintf("Question: %s\n\nPassage:\n%s", query, text)
	extracted, err := s.compressor.Complete(ctx, compressionSystemPrompt, prompt, 0)
	if err != nil {
		s.log.Warn().Err(err).Str("collection", s.collection).Msg("compression failed, keeping raw candidate")
		return text, true
	}

	extracted = strings.TrimSpace(extracted)
	if extracted == "" || extracted == noOutputSentinel {
		return "", false
	}
	return extracted, true
}
