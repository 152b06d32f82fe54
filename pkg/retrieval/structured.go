package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// Fallback values when topic/kind extraction cannot be parsed.
const (
	FallbackTopic = "unknown"
	FallbackKind  = "link"
)

// Topics is the closed set of subject areas a query can map to.
var Topics = []string{
	"tyt_matematik",
	"ayt_matematik",
	"geometri",
	"tyt_fizik",
	"ayt_fizik",
	"tyt_kimya",
	"ayt_kimya",
	"tyt_biyoloji",
	"ayt_biyoloji",
	"dilbilgisi",
	"edebiyat",
	"tarih",
	"coğrafya",
}

// Kinds is the closed set of resource difficulty levels.
var Kinds = []string{
	"kolay_kaynak",
	"orta_kaynak",
	"zor_kaynak",
	"link",
}

// topicKindPrompt mandates the exact two-line output format parsed by
// parseTopicKind.
const topicKindPrompt = `Act like an expert text classification model specialized in educational content.
You have been trained to categorize Turkish student queries into specific exam subjects and difficulty levels for study resource recommendations.
Your task is to analyze a given user query in natural Turkish and determine:

1. The subject area ("topic") the query refers to.
2. The difficulty level or resource type ("kind") requested.

Step 1 — Understand Subject ("topic"):

Match the query to one of the following valid values:

Matematik (Math): tyt_matematik, ayt_matematik
Geometri (Geometry): geometri
Fen Bilimleri (Science): tyt_fizik, ayt_fizik, tyt_kimya, ayt_kimya, tyt_biyoloji, ayt_biyoloji
Sosyal Bilimler ve Dil (Social Studies & Language): dilbilgisi, edebiyat, tarih, coğrafya

Choose only one most relevant topic. If the subject is ambiguous or unclear, choose the most likely one.

Step 2 — Determine Difficulty Level ("kind"):

Match the intent behind the request to one of the following values:

- kolay_kaynak: Request for easy-level materials
- orta_kaynak: Request for medium/intermediate-level materials
- zor_kaynak: Request for difficult/advanced-level materials
- link: Asking for a direct link or resource

Choose the most appropriate label based on intent and language cues (e.g. "kolay soru", "zor kaynak", "link atabilir misin?").

Step 3 — Output Format:

Return only the result in the following format:

topic: <topic_value>
kind: <kind_value>

Replace <topic_value> and <kind_value> with the detected values. Do not include anything else in the output.

Example Input:

Karmaşık sayılarla ilgili zor seviye AYT matematik kaynaklarına ihtiyacım var.

Example Output:

topic: ayt_matematik
kind: zor_kaynak

Take a deep breath and work on this problem step-by-step.`

// Structured retrieves passages from the relational resource table by
// first extracting a (topic, kind) pair from the query.
type Structured struct {
	extractor llm.Client
	resources knowledge.ResourceStore
	log       zerolog.Logger
}

// StructuredConfig configures a structured strategy.
type StructuredConfig struct {
	// Required. Completion client for topic/kind extraction
	Extractor llm.Client

	// Required. Relational resource store
	Resources knowledge.ResourceStore

	// Optional. Logger
	Logger *zerolog.Logger
}

// NewStructured creates a structured retrieval strategy.
func NewStructured(config StructuredConfig) *Structured {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &Structured{
		extractor: config.Extractor,
		resources: config.Resources,
		log:       logger,
	}
}

// ExtractTopicKind derives the (topic, kind) pair driving the relational
// lookup. Extraction never fails: completion errors, unparseable output
// and values outside the closed sets all fall back to the sentinels.
func (s *Structured) ExtractTopicKind(ctx context.Context, query string) (topic, kind string) {
	topic = FallbackTopic
	kind = FallbackKind

	result, err := s.extractor.Complete(ctx, topicKindPrompt, "User Query: "+query, 0)
	if err != nil {
		s.log.Warn().Err(err).Msg("topic/kind extraction failed")
		return topic, kind
	}

	for _, line := range strings.Split(strings.TrimSpace(result), "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "topic:"):
			topic = valueAfterColon(line)
		case strings.HasPrefix(lower, "kind:"):
			kind = valueAfterColon(line)
		}
	}

	if !contains(Topics, topic) {
		s.log.Warn().Str("topic", topic).Msg("extracted topic outside known set")
		topic = FallbackTopic
	}
	if !contains(Kinds, kind) {
		s.log.Warn().Str("kind", kind).Msg("extracted kind outside known set")
		kind = FallbackKind
	}
	return topic, kind
}

// Retrieve extracts the pair and reads matching resources in insertion
// order. A store failure yields an empty list, not an error.
func (s *Structured) Retrieve(ctx context.Context, query string) ([]Passage, error) {
	topic, kind := s.ExtractTopicKind(ctx, query)

	resources, err := s.resources.Find(ctx, topic, kind)
	if err != nil {
		s.log.Warn().Err(err).Str("topic", topic).Str("kind", kind).Msg("resource lookup failed")
		return nil, nil
	}

	passages := make([]Passage, 0, len(resources))
	for _, r := range resources {
		passages = append(passages, Passage{
			Text:     fmt.Sprintf("[%s] %s", r.Kind, r.Context),
			Metadata: map[string]any{"topic": r.Topic},
		})
	}
	return passages, nil
}

func valueAfterColon(line string) string {
	_, after, _ := strings.Cut(line, ":")
	return strings.ToLower(strings.TrimSpace(after))
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
