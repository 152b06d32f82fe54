package ingest

import (
	"testing"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
)

func TestEncoderForMetadataField(t *testing.T) {
	schema := knowledge.DocumentSchema()
	encode := encoderFor(&schema)

	value := encode("rehberlik.pdf", 7)
	m, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("encoded value is %T, want map", value)
	}
	if m["source"] != "rehberlik.pdf" || m["index"] != 7 {
		t.Errorf("encoded map = %v", m)
	}
}

func TestEncoderForTextMetadataField(t *testing.T) {
	schema := knowledge.Schema{Fields: []knowledge.Field{
		{Name: "id", Type: knowledge.FieldIdentifier},
		{Name: "text", Type: knowledge.FieldText},
		{Name: "metadata", Type: knowledge.FieldText},
		{Name: "embedding", Type: knowledge.FieldVector, Dim: 1536},
	}}
	encode := encoderFor(&schema)

	value := encode("rehberlik.pdf", 7)
	s, ok := value.(string)
	if !ok {
		t.Fatalf("encoded value is %T, want string", value)
	}
	if s != "source: rehberlik.pdf, index: 7" {
		t.Errorf("encoded string = %q", s)
	}
}

func TestEncoderForMissingMetadataField(t *testing.T) {
	schema := knowledge.Schema{Fields: []knowledge.Field{
		{Name: "id", Type: knowledge.FieldIdentifier},
		{Name: "text", Type: knowledge.FieldText},
	}}
	encode := encoderFor(&schema)

	if _, ok := encode("a.pdf", 0).(string); !ok {
		t.Error("missing metadata field must fall back to the string encoder")
	}
}
