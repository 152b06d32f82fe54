package expert

import (
	"context"

	"github.com/rs/zerolog"
)

// systemApology is returned when no expert could handle the query at
// all, tagged with the system identity.
const systemApology = "Sorgunuz işlenirken bir hata oluştu. Lütfen daha sonra tekrar deneyin."

// Orchestrator wires the router and the expert set into a single entry
// point.
type Orchestrator struct {
	router  *Router
	experts map[Identity]*Expert
	log     zerolog.Logger
}

// NewOrchestrator creates an orchestrator over the given experts.
// Experts are keyed by their identity; later duplicates win.
func NewOrchestrator(router *Router, experts []*Expert, logger *zerolog.Logger) *Orchestrator {
	byIdentity := make(map[Identity]*Expert, len(experts))
	for _, e := range experts {
		byIdentity[e.Identity()] = e
	}
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &Orchestrator{router: router, experts: byIdentity, log: log}
}

// Answer classifies the query and dispatches it to the selected expert.
//
// Answer is a total function: classification falls back to the default
// identity, a missing expert falls back to the default expert, and a
// fully unroutable query yields a system-tagged apology. It never
// returns an error for any input.
func (o *Orchestrator) Answer(ctx context.Context, query string) Answer {
	identity := o.router.Classify(ctx, query)
	queriesRouted.WithLabelValues(string(identity)).Inc()
	o.log.Debug().Str("identity", string(identity)).Msg("query routed")

	e, ok := o.experts[identity]
	if !ok {
		o.log.Warn().Str("identity", string(identity)).Msg("no expert for identity, using default")
		if e, ok = o.experts[DefaultIdentity]; !ok {
			return Answer{Identity: IdentitySystem, Text: systemApology}
		}
	}
	return e.Respond(ctx, query)
}
