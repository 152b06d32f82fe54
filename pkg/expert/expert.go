package expert

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/llm"
	"github.com/datafy-ai/go-mentor/pkg/retrieval"
)

// NoInformationSentinel replaces the context block when retrieval
// returns no passages.
const NoInformationSentinel = "İlgili bilgi bulunamadı."

// defaultTemperature is the generation temperature shared by all
// experts.
const defaultTemperature = 0.05

// defaultApologyFormat renders an expert failure as a normal answer.
const defaultApologyFormat = "Üzgünüm, yanıt üretirken bir hata oluştu: %v"

// Answer is the result of one expert response: the generated text
// tagged with the identity that produced it.
type Answer struct {
	Identity Identity
	Text     string
}

// Expert pairs a persona, a temperature and a retrieval strategy into
// one responder. Experts are immutable after construction; one instance
// per identity is created once and reused.
type Expert struct {
	identity     Identity
	persona      string
	temperature  float32
	strategy     retrieval.Strategy
	client       llm.Client
	buildContext func([]retrieval.Passage) string
	buildPrompt  func(query, contextBlock string) string
	noResultText string
	apologyFmt   string
	log          zerolog.Logger
}

// Config configures an Expert. Identity, Persona, Strategy and Client
// are required; the remaining fields default to the shared behavior.
type Config struct {
	Identity    Identity
	Persona     string
	Temperature float32
	Strategy    retrieval.Strategy
	Client      llm.Client

	// Optional. Formats the passage list into the context block
	// (defaults to joining texts with blank lines)
	BuildContext func([]retrieval.Passage) string

	// Optional. Formats the user prompt from query and context
	BuildPrompt func(query, contextBlock string) string

	// Optional. When set, an empty passage list short-circuits to this
	// answer without a generation call
	NoResultText string

	// Optional. Printf format rendering a failure as an answer
	ApologyFormat string

	// Optional. Logger
	Logger *zerolog.Logger
}

// New creates an expert from its configuration.
func New(config Config) *Expert {
	e := &Expert{
		identity:     config.Identity,
		persona:      config.Persona,
		temperature:  config.Temperature,
		strategy:     config.Strategy,
		client:       config.Client,
		buildContext: config.BuildContext,
		buildPrompt:  config.BuildPrompt,
		noResultText: config.NoResultText,
		apologyFmt:   config.ApologyFormat,
		log:          zerolog.Nop(),
	}
	if e.temperature == 0 {
		e.temperature = defaultTemperature
	}
	if e.buildContext == nil {
		e.buildContext = JoinPassages
	}
	if e.buildPrompt == nil {
		e.buildPrompt = func(query, contextBlock string) string {
			return fmt.Sprintf("Kullanıcı Sorusu: %s\n\nİlgili Bilgiler: %s", query, contextBlock)
		}
	}
	if e.apologyFmt == "" {
		e.apologyFmt = defaultApologyFormat
	}
	if config.Logger != nil {
		e.log = *config.Logger
	}
	return e
}

// Identity returns the expert's identity tag.
func (e *Expert) Identity() Identity {
	return e.identity
}

// Respond retrieves supporting passages and generates the final answer.
//
// Failures never propagate: retrieval or generation errors become a
// responder-tagged apology answer containing the error description.
func (e *Expert) Respond(ctx context.Context, query string) Answer {
	passages, err := e.strategy.Retrieve(ctx, query)
	if err != nil {
		return e.apologize(err)
	}

	if len(passages) == 0 && e.noResultText != "" {
		return Answer{Identity: e.identity, Text: e.noResultText}
	}

	contextBlock := e.buildContext(passages)
	if contextBlock == "" {
		contextBlock = NoInformationSentinel
	}

	text, err := e.client.Complete(ctx, e.persona, e.buildPrompt(query, contextBlock), e.temperature)
	if err != nil {
		return e.apologize(err)
	}
	return Answer{Identity: e.identity, Text: text}
}

func (e *Expert) apologize(err error) Answer {
	e.log.Error().Err(err).Str("identity", string(e.identity)).Msg("expert response failed")
	expertFailures.WithLabelValues(string(e.identity)).Inc()
	return Answer{Identity: e.identity, Text: fmt.Sprintf(e.apologyFmt, err)}
}

// JoinPassages concatenates passage texts with blank lines. An empty
// list yields "" so the caller substitutes the sentinel.
func JoinPassages(passages []retrieval.Passage) string {
	texts := make([]string, 0, len(passages))
	for _, p := range passages {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n\n")
}
