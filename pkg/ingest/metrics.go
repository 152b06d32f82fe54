package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var chunksIngested = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mentor_chunks_ingested_total",
	Help: "Document chunks successfully embedded and inserted.",
})
