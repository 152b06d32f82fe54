package expert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesRouted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mentor_queries_routed_total",
		Help: "Queries routed to each expert identity.",
	}, []string{"identity"})

	expertFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mentor_expert_failures_total",
		Help: "Expert responses that degraded to an apology answer.",
	}, []string{"identity"})
)
