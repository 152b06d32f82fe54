package expert

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
	"github.com/datafy-ai/go-mentor/pkg/llm"
	"github.com/datafy-ai/go-mentor/pkg/retrieval"
)

// coachNoResultText is returned when no coach matches the extracted
// criteria, inviting the student to loosen them.
const coachNoResultText = "Üzgünüm, kriterlerinize uygun koç bulamadım. Lütfen farklı kriterlerle tekrar deneyin veya kriterlerinizi biraz genişletin."

// NewGuidanceExpert builds the education and career guidance expert:
// semantic retrieval over the rehberlik collection with compression.
func NewGuidanceExpert(client llm.Client, embedder llm.EmbeddingProvider, store knowledge.Store, logger *zerolog.Logger) *Expert {
	strategy := retrieval.NewSemantic(retrieval.SemanticConfig{
		Store:       store,
		Embedder:    embedder,
		Compressor:  client,
		Collection:  knowledge.PhysicalName(string(IdentityGuidance)),
		QueryPrefix: "Eğitim ve kariyer rehberliği:",
		Logger:      logger,
	})
	return New(Config{
		Identity: IdentityGuidance,
		Persona:  guidancePersona,
		Strategy: strategy,
		Client:   client,
		Logger:   logger,
	})
}

// NewMotivationExpert builds the motivational support expert: semantic
// retrieval over the motivasyon collection with compression.
func NewMotivationExpert(client llm.Client, embedder llm.EmbeddingProvider, store knowledge.Store, logger *zerolog.Logger) *Expert {
	strategy := retrieval.NewSemantic(retrieval.SemanticConfig{
		Store:       store,
		Embedder:    embedder,
		Compressor:  client,
		Collection:  knowledge.PhysicalName(string(IdentityMotivation)),
		QueryPrefix: "Motivasyon ve ilham:",
		Logger:      logger,
	})
	return New(Config{
		Identity: IdentityMotivation,
		Persona:  motivationPersona,
		Strategy: strategy,
		Client:   client,
		Logger:   logger,
	})
}

// NewRecommendationExpert builds the study resource recommendation
// expert: structured retrieval against the relational resource table.
func NewRecommendationExpert(client llm.Client, resources knowledge.ResourceStore, logger *zerolog.Logger) *Expert {
	strategy := retrieval.NewStructured(retrieval.StructuredConfig{
		Extractor: client,
		Resources: resources,
		Logger:    logger,
	})
	return New(Config{
		Identity: IdentityRecommendation,
		Persona:  recommendationPersona,
		Strategy: strategy,
		Client:   client,
		Logger:   logger,
	})
}

// NewCoachExpert builds the coach matching expert: filtered vector
// retrieval over the coach collection, with a structured evidence block
// listing each candidate's attributes.
func NewCoachExpert(client llm.Client, embedder llm.EmbeddingProvider, store knowledge.Store, logger *zerolog.Logger) *Expert {
	strategy := retrieval.NewCoach(retrieval.CoachConfig{
		Store:    store,
		Embedder: embedder,
		Analyzer: client,
		Logger:   logger,
	})
	return New(Config{
		Identity:     IdentityCoach,
		Persona:      coachPersona,
		Strategy:     strategy,
		Client:       client,
		BuildContext: FormatCoaches,
		BuildPrompt: func(query, contextBlock string) string {
			return fmt.Sprintf("Öğrenci Mesajı: %s\n\nÖnerilen Koçlar: %s", query, contextBlock)
		},
		NoResultText:  coachNoResultText,
		ApologyFormat: "Üzgünüm, koç önerileri oluşturulurken bir hata oluştu: %v",
		Logger:        logger,
	})
}

// FormatCoaches renders coach passages into one paragraph per
// candidate, exposing the full attribute set to the generation call.
func FormatCoaches(passages []retrieval.Passage) string {
	var b strings.Builder
	for i, p := range passages {
		meta := p.Metadata
		fmt.Fprintf(&b, "Koç %d: %v\n", i+1, meta["isim_soyisim"])
		fmt.Fprintf(&b, "Okul/Bölüm: %v - %v\n", meta["okul"], meta["bolum"])
		fmt.Fprintf(&b, "Biyografi: %v\n", meta["biyografi"])
		fmt.Fprintf(&b, "Koçluk Ücreti: %v TL\n", meta["kocluk_ucreti"])
		fmt.Fprintf(&b, "Tecrübe: %v yıl\n", meta["tecrube_sene"])
		fmt.Fprintf(&b, "Mezuna Kaldı: %s\n", yesNo(meta["mezuna_kaldi"]))
		fmt.Fprintf(&b, "Koçluk Alanı: %v\n", meta["kocluk_alani"])
		fmt.Fprintf(&b, "Güçlü Alanlar: %v\n", meta["guclu_alanlar"])
		fmt.Fprintf(&b, "Son TYT Derecesi: %v\n", meta["tyt_derece_son"])
		fmt.Fprintf(&b, "Son Sayısal Derecesi: %v\n", meta["sayisal_derece_son"])
		fmt.Fprintf(&b, "Son Sözel Derecesi: %v\n", meta["sozel_derece_son"])
		fmt.Fprintf(&b, "Son EA Derecesi: %v\n", meta["ea_derece_son"])
		fmt.Fprintf(&b, "Benzerlik Skoru: %.4f\n\n", p.Score)
	}
	return strings.TrimRight(b.String(), "\n")
}

func yesNo(value any) string {
	if b, ok := value.(bool); ok && b {
		return "Evet"
	}
	return "Hayır"
}
