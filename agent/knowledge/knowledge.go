// Package knowledge implements the retrieval-augmented knowledge store for the
// shipping assistant: a small fixed corpus chunked, embedded, and indexed for
// semantic similarity search.
package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

const contextPassages = 3

// Config selects the index backend and chunking policy.
type Config struct {
	IndexPath    string `envconfig:"INDEX_PATH" split_words:"true" default:"data/knowledge_index.json"`
	EmbedModel   string `envconfig:"EMBED_MODEL" split_words:"true" default:"text-embedding-3-small"`
	ChunkSize    int    `envconfig:"CHUNK_SIZE" split_words:"true" default:"1000"`
	ChunkOverlap int    `envconfig:"CHUNK_OVERLAP" split_words:"true" default:"200"`
	PostgresDSN  string `envconfig:"POSTGRES_DSN" split_words:"true"`
}

// Base composes the chunker, embedder, and vector store behind the
// contract.KnowledgeBase interface.
type Base struct {
	embedder Embedder
	store    Store
	chunker  *Chunker
}

var _ contractx.KnowledgeBase = (*Base)(nil)

// NewBase wires the store and seeds the static corpus when the index is empty.
// Initialization is idempotent: a reopened snapshot is used as-is.
func NewBase(ctx context.Context, embedder Embedder, store Store, chunker *Chunker) (*Base, error) {
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if chunker == nil {
		chunker = NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	}

	b := &Base{
		embedder: embedder,
		store:    store,
		chunker:  chunker,
	}

	n, err := store.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("inspect knowledge index: %w", err)
	}
	if n == 0 {
		log.Info().Int("passages", len(seedCorpus)).Msg("seeding knowledge index")
		for _, p := range seedCorpus {
			if err := b.Add(ctx, p.Content, p.Category); err != nil {
				return nil, fmt.Errorf("seed knowledge index: %w", err)
			}
		}
	}

	return b, nil
}

// Add chunks, embeds, and indexes new content under the given category.
func (b *Base) Add(ctx context.Context, content string, category string) error {
	chunks := b.chunker.Split(content)
	if len(chunks) == 0 {
		return errors.New("content is empty")
	}

	vectors, err := b.embedder.Embed(ctx, chunks)
	if err != nil {
		return fmt.Errorf("embed content: %w", err)
	}

	passages := make([]contractx.Passage, len(chunks))
	for i, chunk := range chunks {
		passages[i] = contractx.Passage{
			Content:  chunk,
			Category: category,
		}
	}

	return b.store.Upsert(ctx, passages, vectors)
}

// Search returns at most k passages, most similar first.
func (b *Base) Search(ctx context.Context, query string, k int) ([]contractx.ScoredPassage, error) {
	vectors, err := b.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, errors.New("embedder returned no vector for query")
	}
	return b.store.Search(ctx, vectors[0], k)
}

// ContextFor formats the top passages for the query into a prompt block.
func (b *Base) ContextFor(ctx context.Context, query string) (string, error) {
	results, err := b.Search(ctx, query, contextPassages)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Relevant shipping knowledge:\n\n")
	for _, r := range results {
		sb.WriteString("- ")
		sb.WriteString(r.Passage.Content)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
