package retrieval

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// defaultCoachTopK is the candidate count for coach matching.
const defaultCoachTopK = 3

// analyzeNeedsPrompt instructs the model to emit strict JSON naming
// only the constraints present in the student's message.
const analyzeNeedsPrompt = `Sen bir eğitim koçu eşleştirme uzmanısın.

Sana bir öğrencinin mesajı verilecek. Bu mesajı analiz ederek öğrenciye uygun koç filtreleri belirle.

Şu filtreler belirlenebilir:
1. Koçluk alanı (sayısal, sözel, eşit ağırlık, dil)
2. Koçun mezuna kalıp kalmadığı (mezuna_kaldi: true/false)
3. Öğrencinin sınıf seviyesi (mezun_ogrenci_kabul veya alt_sinif_kabul)
4. Koçun tecrübe seviyesi (minimum tecrübe senesi)
5. Maksimum koçluk ücreti
6. Koçun başarı derecesi (sayısal, sözel, eşit ağırlık, TYT)

JSON formatında filtreler oluştur. Sadece öğrencinin mesajında açıkça belirtilen veya çıkarılabilecek filtreleri dahil et.
Örnek format:
{
    "kocluk_alani": ["sayısal"],
    "mezuna_kaldi": true,
    "mezun_ogrenci_kabul": true,
    "tecrube_sene": {"min": 1},
    "kocluk_ucreti": {"max": 3000},
    "sayisal_derece_son": {"max": 5000}
}

Sadece JSON döndür, başka açıklama yapma.`

// Coach retrieves coach profiles by combining LLM-extracted attribute
// predicates with vector ranking over biography embeddings.
type Coach struct {
	store      knowledge.Store
	embedder   llm.EmbeddingProvider
	analyzer   llm.Client
	collection string
	topK       int
	log        zerolog.Logger
}

// CoachConfig configures a coach-matching strategy.
type CoachConfig struct {
	// Required. Vector store holding the coach collection
	Store knowledge.Store

	// Required. Embedding provider for query vectors
	Embedder llm.EmbeddingProvider

	// Required. Completion client for needs analysis
	Analyzer llm.Client

	// Optional. Physical coach collection name (defaults to "koc_collection")
	Collection string

	// Optional. Candidate count (defaults to 3)
	TopK int

	// Optional. Logger
	Logger *zerolog.Logger
}

// NewCoach creates a coach-matching retrieval strategy.
func NewCoach(config CoachConfig) *Coach {
	collection := config.Collection
	if collection == "" {
		collection = knowledge.PhysicalName("koc")
	}
	topK := config.TopK
	if topK <= 0 {
		topK = defaultCoachTopK
	}
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &Coach{
		store:      config.Store,
		embedder:   config.Embedder,
		analyzer:   config.Analyzer,
		collection: collection,
		topK:       topK,
		log:        logger,
	}
}

// AnalyzeNeeds extracts a FilterSpec from the student's message.
//
// Completion failures and unparseable output yield an empty spec, which
// downstream means an unfiltered search.
func (c *Coach) AnalyzeNeeds(ctx context.Context, query string) FilterSpec {
	result, err := c.analyzer.Complete(ctx, analyzeNeedsPrompt, "Öğrenci Mesajı: "+query, 0.2)
	if err != nil {
		c.log.Warn().Err(err).Msg("needs analysis failed")
		return FilterSpec{}
	}

	spec, rejected := ParseFilterSpec(result)
	if len(rejected) > 0 {
		c.log.Warn().Strs("keys", rejected).Msg("filter keys rejected")
	}
	return spec
}

// Retrieve analyzes the query, embeds it and runs predicate-constrained
// vector search against the coach collection. Hits carry the full
// attribute set in their metadata plus the similarity score.
//
// Any failure yields an empty list: the caller treats it exactly like
// "no matching coaches".
func (c *Coach) Retrieve(ctx context.Context, query string) ([]Passage, error) {
	spec := c.AnalyzeNeeds(ctx, query)
	predicate := BuildPredicate(spec)

	vector, err := c.embedder.Embed(ctx, query)
	if err != nil {
		c.log.Warn().Err(err).Msg("query embedding failed")
		return nil, nil
	}

	hits, err := c.store.Search(ctx, c.collection, vector, c.topK, predicate)
	if err != nil {
		c.log.Warn().Err(err).Str("predicate", predicate).Msg("coach search failed")
		return nil, nil
	}

	passages := make([]Passage, 0, len(hits))
	for _, hit := range hits {
		text := hit.Text
		if text == "" {
			if bio, ok := hit.Metadata["biyografi"].(string); ok {
				text = bio
			}
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
