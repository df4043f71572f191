package knowledge

import "strings"

const (
	// Chunking policy for the seed corpus and administrative additions.
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Chunker splits text into bounded-size overlapping chunks. Sizes are measured
// in runes so multi-byte text does not get cut mid-character.
type Chunker struct {
	size    int
	overlap int
}

func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 2
	}
	return &Chunker{size: size, overlap: overlap}
}

// Split returns the trimmed, non-empty chunks of content. Consecutive chunks
// share the configured overlap so retrieval does not lose context at cuts.
func (c *Chunker) Split(content string) []string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= c.size {
		return []string{string(runes)}
	}

	step := c.size - c.overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}
