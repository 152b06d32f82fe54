package ingest

import (
	"strings"
	"testing"
)

func TestSplitterShortTextSingleChunk(t *testing.T) {
	s := NewSplitter()

	chunks := s.Split("Kısa bir paragraf.")
	if len(chunks) != 1 || chunks[0] != "Kısa bir paragraf." {
		t.Errorf("Split() = %v, want the text unchanged", chunks)
	}
}

func TestSplitterEmptyText(t *testing.T) {
	s := NewSplitter()

	for _, text := range []string{"", "   ", "\n\n\n"} {
		if chunks := s.Split(text); chunks != nil {
			t.Errorf("Split(%q) = %v, want nil", text, chunks)
		}
	}
}

func TestSplitterMergesWithOverlap(t *testing.T) {
	s := &Splitter{ChunkSize: 10, Overlap: 4, Separators: []string{" ", ""}}

	chunks := s.Split("aa bb cc dd ee")
	expected := []string{"aa bb cc", "cc dd ee"}
	if len(chunks) != len(expected) {
		t.Fatalf("Split() = %v, want %v", chunks, expected)
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i], expected[i])
		}
	}
}

func TestSplitterRespectsSizeBound(t *testing.T) {
	text := strings.Repeat("Bu cümle Türkçe karakterler içerir: ğüşıöç. ", 60)
	s := &Splitter{ChunkSize: 100, Overlap: 20, Separators: DefaultSeparators()}

	chunks := s.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want several", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > 100 {
			t.Errorf("chunk[%d] has %d runes, exceeds bound: %q", i, n, chunk)
		}
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("chunk[%d] is blank", i)
		}
	}
}

func TestSplitterOversizedWordFallsBackToRunes(t *testing.T) {
	word := strings.Repeat("ğ", 25)
	s := &Splitter{ChunkSize: 10, Overlap: 4, Separators: []string{" ", ""}}

	chunks := s.Split(word)
	if len(chunks) < 3 {
		t.Fatalf("got %d chunks, want at least 3 for a 25-rune word", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > 10 {
			t.Errorf("chunk[%d] has %d runes, exceeds bound", i, n)
		}
		if !strings.Contains(word, chunk) {
			t.Errorf("chunk[%d] %q is not a substring of the input", i, chunk)
		}
	}
	if !strings.HasSuffix(word, chunks[len(chunks)-1]) {
		t.Error("last chunk does not cover the end of the input")
	}
}

func TestSplitterParagraphBoundariesPreferred(t *testing.T) {
	text := "Birinci paragraf burada.\n\nİkinci paragraf burada.\n\nÜçüncü paragraf burada."
	s := &Splitter{ChunkSize: 30, Overlap: 0, Separators: DefaultSeparators()}

	chunks := s.Split(text)
	for i, chunk := range chunks {
		if strings.Contains(chunk, "\n\n") {
			t.Errorf("chunk[%d] spans a paragraph boundary: %q", i, chunk)
		}
	}
	// All paragraph content survives the split
	joined := strings.Join(chunks, " ")
	for _, word := range []string{"Birinci", "İkinci", "Üçüncü"} {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q lost during splitting", word)
		}
	}
}

func TestSplitterDeterministic(t *testing.T) {
	text := strings.Repeat("Deneme metni, tekrarlanan içerik. ", 40)
	s := NewSplitter()

	first := s.Split(text)
	for run := 0; run < 5; run++ {
		again := s.Split(text)
		if len(again) != len(first) {
			t.Fatalf("run %d produced %d chunks, first run %d", run, len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d chunk[%d] differs", run, i)
			}
		}
	}
}
