// Package knowledge defines the contracts for the engine's knowledge
// stores: a vector-capable store organized into named collections, and a
// relational store holding fixed-category text resources.
//
// Concrete implementations live in the pgvector and postgres subpackages.
// Collection naming follows a friendly-key to physical-name convention
// managed by the Registry.
package knowledge

import (
	"context"
	"errors"

	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// ErrUnknownCollection is returned when an operation references a
// collection that does not exist in the store.
var ErrUnknownCollection = errors.New("unknown collection")

// FieldType identifies the semantic type of a collection field.
type FieldType string

const (
	// FieldIdentifier is the primary key field
	FieldIdentifier FieldType = "identifier"
	// FieldText holds unstructured text content
	FieldText FieldType = "text"
	// FieldMetadata holds structured key/value metadata
	FieldMetadata FieldType = "metadata"
	// FieldVector holds a fixed-dimension embedding
	FieldVector FieldType = "vector"
	// FieldInt holds a 64-bit integer attribute
	FieldInt FieldType = "int"
	// FieldBool holds a boolean attribute
	FieldBool FieldType = "bool"
)

// Field describes one column of a collection schema.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
	Dim  int       `json:"dim,omitempty"` // Vector dimension, FieldVector only
}

// Schema is the ordered field list of a collection.
type Schema struct {
	Fields      []Field `json:"fields"`
	Description string  `json:"description,omitempty"`
}

// Field returns the named field, or nil if the schema does not declare it.
func (s *Schema) Field(name string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// DocumentSchema returns the fixed schema used by document collections:
// id, text, metadata, embedding.
func DocumentSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "id", Type: FieldIdentifier},
			{Name: "text", Type: FieldText},
			{Name: "metadata", Type: FieldMetadata},
			{Name: "embedding", Type: FieldVector, Dim: llm.EmbeddingDimension},
		},
	}
}

// IndexSpec configures the approximate-nearest-neighbor index of a
// collection's vector field.
type IndexSpec struct {
	Algorithm      string `json:"algorithm"`       // Index algorithm, e.g. "hnsw"
	Metric         string `json:"metric"`          // Similarity metric, e.g. "cosine"
	M              int    `json:"m"`               // HNSW graph connectivity
	EfConstruction int    `json:"ef_construction"` // HNSW build-time beam width
}

// DefaultIndexSpec returns the index configuration used for all engine
// collections: HNSW over cosine similarity.
func DefaultIndexSpec() IndexSpec {
	return IndexSpec{
		Algorithm:      "hnsw",
		Metric:         "cosine",
		M:              8,
		EfConstruction: 64,
	}
}

// Row is one entity to insert into a collection. Values are keyed by
// field name; the embedding is carried separately so implementations can
// bind it with their native vector type.
type Row struct {
	Values    map[string]any
	Embedding llm.EmbeddingVector
}

// Hit is one ranked result of a vector search. Metadata carries every
// non-vector field returned by the store, including attribute columns of
// collections with extended schemas.
type Hit struct {
	ID       string
	Text     string
	Score    float64
	Metadata map[string]any
}

// Store is the vector-capable knowledge store.
//
// Collections are created on first reference; Search applies an optional
// store-side predicate over the collection's attribute fields and returns
// hits in similarity-descending order.
type Store interface {
	// HasCollection reports whether a physical collection exists
	HasCollection(ctx context.Context, name string) (bool, error)

	// CreateCollection creates a collection with the given schema and ANN index
	CreateCollection(ctx context.Context, name string, schema Schema, index IndexSpec) error

	// DropCollection removes a collection and all its data
	DropCollection(ctx context.Context, name string) error

	// CollectionSchema returns the declared field list of an existing collection
	CollectionSchema(ctx context.Context, name string) (*Schema, error)

	// Insert adds rows to a collection
	Insert(ctx context.Context, name string, rows []Row) error

	// Search runs k-nearest-neighbor search, optionally constrained by a
	// predicate evaluated store-side. An empty predicate searches the
	// whole collection.
	Search(ctx context.Context, name string, vector llm.EmbeddingVector, k int, predicate string) ([]Hit, error)

	// ListCollections returns all physical collection names
	ListCollections(ctx context.Context) ([]string, error)

	// CollectionStats returns the number of entities in a collection
	CollectionStats(ctx context.Context, name string) (int64, error)

	// Close releases any resources held by the store
	Close() error
}

// Resource is one fixed-category text resource from the relational store.
type Resource struct {
	Topic       string
	Kind        string
	Context     string
	Description string
}

// ResourceStore is the relational store of study resources keyed by
// (topic, kind). Results preserve insertion order.
type ResourceStore interface {
	Find(ctx context.Context, topic, kind string) ([]Resource, error)
}
