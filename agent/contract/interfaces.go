package contract

import "context"

// KnowledgeBase answers semantic similarity queries over the shipping corpus.
type KnowledgeBase interface {
	Search(ctx context.Context, query string, k int) ([]ScoredPassage, error)
	Add(ctx context.Context, content string, category string) error
	ContextFor(ctx context.Context, query string) (string, error)
}

// ToolExecutor runs one named tool with loosely typed arguments. Output is
// opaque text; failures are rendered into the text, never returned as errors.
type ToolExecutor func(ctx context.Context, tool string, args map[string]any) string
