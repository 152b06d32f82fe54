package ingest

import (
	"fmt"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
)

// metadataEncoder renders chunk provenance in the format matching the
// collection's metadata field type.
type metadataEncoder func(source string, index int) any

// encoderFor selects the encoder once per ingestion from the declared
// schema: a structured object for metadata-typed fields, a flattened
// string for anything else (legacy collections store metadata as text).
func encoderFor(schema *knowledge.Schema) metadataEncoder {
	field := schema.Field("metadata")
	if field != nil && field.Type == knowledge.FieldMetadata {
		return func(source string, index int) any {
			return map[string]any{"source": source, "index": index}
		}
	}
	return func(source string, index int) any {
		return fmt.Sprintf("source: %s, index: %d", source, index)
	}
}
