package ingest

import "strings"

// Default chunking parameters.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// DefaultSeparators orders split boundaries coarse to fine: paragraph,
// line, word, rune.
func DefaultSeparators() []string {
	return []string{"\n\n", "\n", " ", ""}
}

// Splitter cuts text into overlapping chunks, recursively trying
// coarser-to-finer separators until each chunk fits the size bound.
//
// Sizes are measured in runes so multi-byte Turkish text chunks
// consistently.
type Splitter struct {
	ChunkSize  int
	Overlap    int
	Separators []string
}

// NewSplitter creates a splitter with the default parameters.
func NewSplitter() *Splitter {
	return &Splitter{
		ChunkSize:  DefaultChunkSize,
		Overlap:    DefaultChunkOverlap,
		Separators: DefaultSeparators(),
	}
}

// Split cuts the text into chunks of at most ChunkSize runes with
// Overlap runes carried between adjacent chunks. Whitespace-only
// chunks are dropped. Deterministic: the same input always yields the
// same chunks.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.Separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	// Pick the first separator present in the text; "" always matches
	sep := ""
	var remaining []string
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			remaining = separators[i+1:]
			break
		}
	}

	var final []string
	var pending []string
	for _, piece := range splitBy(text, sep) {
		if runeLen(piece) < s.ChunkSize {
			pending = append(pending, piece)
			continue
		}

		if len(pending) > 0 {
			final = append(final, s.merge(pending, sep)...)
			pending = nil
		}
		if len(remaining) == 0 {
			final = append(final, piece)
		} else {
			final = append(final, s.split(piece, remaining)...)
		}
	}
	if len(pending) > 0 {
		final = append(final, s.merge(pending, sep)...)
	}
	return final
}

// merge greedily joins pieces up to ChunkSize, then starts the next
// chunk from the trailing pieces still within Overlap.
func (s *Splitter) merge(pieces []string, sep string) []string {
	sepLen := runeLen(sep)

	var chunks []string
	var current []string
	total := 0

	for _, piece := range pieces {
		pieceLen := runeLen(piece)

		if len(current) > 0 && total+sepLen+pieceLen > s.ChunkSize {
			if chunk := strings.TrimSpace(strings.Join(current, sep)); chunk != "" {
				chunks = append(chunks, chunk)
			}
			// Drop leading pieces until the carry-over fits the overlap
			// and leaves room for the incoming piece
			for len(current) > 0 && (total > s.Overlap || total+sepLen+pieceLen > s.ChunkSize) {
				total -= runeLen(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
			}
		}

		if len(current) > 0 {
			total += sepLen
		}
		current = append(current, piece)
		total += pieceLen
	}

	if chunk := strings.TrimSpace(strings.Join(current, sep)); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// splitBy splits on the separator, dropping empty pieces. The empty
// separator splits into individual runes.
func splitBy(text, sep string) []string {
	var raw []string
	if sep == "" {
		for _, r := range text {
			raw = append(raw, string(r))
		}
	} else {
		raw = strings.Split(text, sep)
	}

	pieces := make([]string, 0, len(raw))
	for _, piece := range raw {
		if piece != "" {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

func runeLen(s string) int {
	return len([]rune(s))
}
