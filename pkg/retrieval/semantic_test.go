package retrieval

import (
	"context"
	"testing"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
	"github.com/datafy-ai/go-mentor/pkg/llm"
)

func TestSemanticRetrieve(t *testing.T) {
	store := knowledge.NewMockStore()
	store.SetHits("rehberlik_collection", []knowledge.Hit{
		{ID: "1", Text: "Üniversite tercihlerinde ilgi alanları önemlidir.", Score: 0.91},
		{ID: "2", Text: "Burs başvuruları eylül ayında açılır.", Score: 0.84},
	})

	compressor := llm.NewMockClient("Üniversite tercihlerinde ilgi alanları önemlidir.")
	strategy := NewSemantic(SemanticConfig{
		Store:       store,
		Embedder:    llm.NewMockEmbeddingProvider(),
		Compressor:  compressor,
		Collection:  "rehberlik_collection",
		QueryPrefix: "Eğitim ve kariyer rehberliği:",
	})

	passages, err := strategy.Retrieve(context.Background(), "Hangi bölümü seçmeliyim?")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(passages) != 2 {
		t.Fatalf("got %d passages, want 2", len(passages))
	}
	if passages[0].Text != "Üniversite tercihlerinde ilgi alanları önemlidir." {
		t.Errorf("passage text = %q", passages[0].Text)
	}
	if !passages[0].Scored || passages[0].Score != 0.91 {
		t.Errorf("passage score = %v scored=%t", passages[0].Score, passages[0].Scored)
	}

	// Search used the default candidate count and no predicate
	if store.LastSearch.K != 5 || store.LastSearch.Predicate != "" {
		t.Errorf("Search called with k=%d predicate=%q", store.LastSearch.K, store.LastSearch.Predicate)
	}
}

func TestSemanticRetrieveDiscardsNoOutput(t *testing.T) {
	store := knowledge.NewMockStore()
	store.SetHits("motivasyon_collection", []knowledge.Hit{
		{ID: "1", Text: "İlgisiz içerik", Score: 0.7},
		{ID: "2", Text: "Her gün küçük hedefler koy.", Score: 0.6},
	})

	compressor := llm.NewMockClientWithResponses([]string{"NO_OUTPUT", "Her gün küçük hedefler koy."})
	strategy := NewSemantic(SemanticConfig{
		Store:      store,
		Embedder:   llm.NewMockEmbeddingProvider(),
		Compressor: compressor,
		Collection: "motivasyon_collection",
	})

	passages, err := strategy.Retrieve(context.Background(), "Motivasyonum yok")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(passages) != 1 {
		t.Fatalf("got %d passages, want 1 after sentinel discard", len(passages))
	}
	if passages[0].Text != "Her gün küçük hedefler koy." {
		t.Errorf("passage text = %q", passages[0].Text)
	}
}

func TestSemanticRetrieveNilCompressorKeepsRawCandidates(t *testing.T) {
	store := knowledge.NewMockStore()
	store.SetHits("rehberlik_collection", []knowledge.Hit{
		{ID: "1", Text: "ham metin", Score: 0.5},
	})

	strategy := NewSemantic(SemanticConfig{
		Store:      store,
		Embedder:   llm.NewMockEmbeddingProvider(),
		Collection: "rehberlik_collection",
	})

	passages, err := strategy.Retrieve(context.Background(), "soru")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(passages) != 1 || passages[0].Text != "ham metin" {
		t.Errorf("passages = %+v, want raw candidate", passages)
	}
}

func TestSemanticRetrieveCompressionErrorKeepsRawCandidate(t *testing.T) {
	store := knowledge.NewMockStore()
	store.SetHits("rehberlik_collection", []knowledge.Hit{
		{ID: "1", Text: "ham metin", Score: 0.5},
	})

	strategy := NewSemantic(SemanticConfig{
		Store:      store,
		Embedder:   llm.NewMockEmbeddingProvider(),
		Compressor: llm.NewMockClientWithError("rate limited"),
		Collection: "rehberlik_collection",
	})

	passages, err := strategy.Retrieve(context.Background(), "soru")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(passages) != 1 || passages[0].Text != "ham metin" {
		t.Errorf("passages = %+v, want raw candidate kept on compression error", passages)
	}
}

func TestSemanticRetrieveStoreFailureYieldsEmpty(t *testing.T) {
	strategy := NewSemantic(SemanticConfig{
		Store:      knowledge.NewMockStoreWithError("connection refused"),
		Embedder:   llm.NewMockEmbeddingProvider(),
		Collection: "rehberlik_collection",
	})

	passages, err := strategy.Retrieve(context.Background(), "soru")
	if err != nil {
		t.Fatalf("Retrieve() error = %v, want nil", err)
	}
	if len(passages) != 0 {
		t.Errorf("got %d passages, want 0", len(passages))
	}
}

func TestSemanticRetrieveEmbeddingFailureYieldsEmpty(t *testing.T) {
	strategy := NewSemantic(SemanticConfig{
		Store:      knowledge.NewMockStore(),
		Embedder:   llm.NewMockEmbeddingProviderWithError(),
		Collection: "rehberlik_collection",
	})

	passages, err := strategy.Retrieve(context.Background(), "soru")
	if err != nil {
		t.Fatalf("Retrieve() error = %v, want nil", err)
	}
	if len(passages) != 0 {
		t.Errorf("got %d passages, want 0", len(passages))
	}
}

func TestSemanticQueryFraming(t *testing.T) {
	store := knowledge.NewMockStore()
	store.SetHits("rehberlik_collection", []knowledge.Hit{{ID: "1", Text: "metin", Score: 0.9}})

	compressor := llm.NewMockClient("metin")
	strategy := NewSemantic(SemanticConfig{
		Store:       store,
		Embedder:    llm.NewMockEmbeddingProvider(),
		Compressor:  compressor,
		Collection:  "rehberlik_collection",
		QueryPrefix: "Eğitim ve kariyer rehberliği:",
	})

	if _, err := strategy.Retrieve(context.Background(), "Hangi bölüm?"); err != nil {
		t.Fatal(err)
	}

	// Compression sees the bare query, not the framed one
	if compressor.LastPrompt != "Question: Hangi bölüm?\n\nPassage:\nmetin" {
		t.Errorf("compression prompt = %q", compressor.LastPrompt)
	}
	if compressor.LastTemperature != 0 {
		t.Errorf("compression temperature = %v, want 0", compressor.LastTemperature)
	}
}
