// Package retrieval implements the engine's retrieval strategies: one
// capability ("given a query, return ranked supporting passages") with
// three interchangeable implementations.
//
// Semantic runs vector search with an LLM compression pass, Structured
// converts the query into a (topic, kind) pair and reads the relational
// resource table, and Coach combines LLM-extracted attribute predicates
// with filtered vector search.
//
// All strategies degrade on external failure: a store or embedding
// error yields an empty passage list, logged, never an error to the
// caller.
package retrieval

import "context"

// Passage is one retrieved unit of evidence.
//
// Metadata schema varies by strategy; Score is meaningful only when
// Scored is true (vector-ranked results).
type Passage struct {
	Text     string
	Metadata map[string]any
	Score    float64
	Scored   bool
}

// Strategy retrieves ranked supporting passages for a query.
//
// The passage order is the strategy's intrinsic ranking: similarity
// descending for vector strategies, insertion order for the relational
// one.
type Strategy interface {
	Retrieve(ctx context.Context, query string) ([]Passage, error)
}
