package expert

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// Router classifies a query into exactly one expert identity.
type Router struct {
	client    llm.Client
	defaultTo Identity
	log       zerolog.Logger
}

// RouterConfig configures a Router.
type RouterConfig struct {
	// Required. Completion client for classification
	Client llm.Client

	// Optional. Identity returned on failure or ambiguity
	// (defaults to rehberlik)
	Default Identity

	// Optional. Logger
	Logger *zerolog.Logger
}

// NewRouter creates a query router.
func NewRouter(config RouterConfig) *Router {
	defaultTo := config.Default
	if defaultTo == "" {
		defaultTo = DefaultIdentity
	}
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &Router{client: config.Client, defaultTo: defaultTo, log: logger}
}

// Classify issues one deterministic completion call and maps the result
// onto a known identity.
//
// One call, one of N+1 outcomes: a valid identity, or the default on
// any failure or unrecognized output. Classification never fails.
func (r *Router) Classify(ctx context.Context, query string) Identity {
	result, err := r.client.Complete(ctx, routerPrompt, query, 0)
	if err != nil {
		r.log.Warn().Err(err).Msg("classification failed, using default identity")
		return r.defaultTo
	}

	identity, ok := ParseIdentity(result)
	if !ok {
		r.log.Warn().Str("result", result).Msg("unrecognized classification, using default identity")
		return r.defaultTo
	}
	return identity
}
