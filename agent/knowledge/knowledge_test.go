package knowledge

import (
	"context"
	"hash/fnv"
	"math"
	"path/filepath"
	"strings"
	"testing"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

// hashEmbedder produces deterministic bag-of-words vectors so similarity
// ranking behaves sensibly without a remote model.
type hashEmbedder struct {
	calls int
}

func (e *hashEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	e.calls++
	out := make([][]float64, len(texts))
	for i, text := range texts {
		v := make([]float64, 64)
		for _, token := range strings.Fields(strings.ToLower(text)) {
			h := fnv.New32a()
			_, _ = h.Write([]byte(token))
			v[h.Sum32()%64]++
		}
		var sum float64
		for _, x := range v {
			sum += x * x
		}
		if norm := math.Sqrt(sum); norm > 0 {
			for j := range v {
				v[j] /= norm
			}
		}
		out[i] = v
	}
	return out, nil
}

func newTestBase(t *testing.T) *Base {
	t.Helper()
	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	base, err := NewBase(context.Background(), &hashEmbedder{}, store, NewChunker(DefaultChunkSize, DefaultChunkOverlap))
	if err != nil {
		t.Fatalf("NewBase() error = %v", err)
	}
	return base
}

func TestNewBaseSeedsEmptyIndex(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	n, err := base.store.Len(context.Background())
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n == 0 {
		t.Fatal("expected seeded index")
	}
}

func TestAddSearchRoundTrip(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ctx := context.Background()

	content := "Kalimantan shipping corridors: Banjarmasin and Balikpapan accept cargo freight riverboats."
	if err := base.Add(ctx, content, "location_info"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	results, err := base.Search(ctx, "Banjarmasin Balikpapan cargo riverboats", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected search results")
	}
	if !strings.Contains(content, results[0].Passage.Content) && !strings.Contains(results[0].Passage.Content, "Banjarmasin") {
		t.Fatalf("top result does not match added content: %q", results[0].Passage.Content)
	}
	if results[0].Passage.Category != "location_info" {
		t.Fatalf("unexpected category: %s", results[0].Passage.Category)
	}
}

func TestSearchRankedMostSimilarFirst(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	ctx := context.Background()

	results, err := base.Search(ctx, "weight grams kilogram package", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not ordered by score: %v then %v", results[i-1].Score, results[i].Score)
		}
	}
}

func TestContextForFormat(t *testing.T) {
	t.Parallel()

	base := newTestBase(t)
	out, err := base.ContextFor(context.Background(), "how heavy is a medium package")
	if err != nil {
		t.Fatalf("ContextFor() error = %v", err)
	}
	if !strings.HasPrefix(out, "Relevant shipping knowledge:") {
		t.Fatalf("unexpected context header: %q", out[:40])
	}
	if !strings.Contains(out, "- ") {
		t.Fatalf("expected bulleted passages, got:\n%s", out)
	}
}

func TestMemoryStoreSnapshotReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.json")

	store, err := NewMemoryStore(WithSnapshotPath(path))
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}

	embedder := &hashEmbedder{}
	if _, err := NewBase(ctx, embedder, store, nil); err != nil {
		t.Fatalf("NewBase() error = %v", err)
	}
	seeded, err := store.Len(ctx)
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if seeded == 0 {
		t.Fatal("expected seeded snapshot")
	}
	firstCalls := embedder.calls

	// Reopen: the persisted index is reused, nothing is re-embedded.
	reopened, err := NewMemoryStore(WithSnapshotPath(path))
	if err != nil {
		t.Fatalf("reopen NewMemoryStore() error = %v", err)
	}
	if _, err := NewBase(ctx, embedder, reopened, nil); err != nil {
		t.Fatalf("reopen NewBase() error = %v", err)
	}
	n, err := reopened.Len(ctx)
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n != seeded {
		t.Fatalf("snapshot size changed on reopen: %d != %d", n, seeded)
	}
	if embedder.calls != firstCalls {
		t.Fatalf("reopen re-embedded the corpus: %d extra calls", embedder.calls-firstCalls)
	}
}

func TestMemoryStoreUpsertLengthMismatch(t *testing.T) {
	t.Parallel()

	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	err = store.Upsert(context.Background(), []contractx.Passage{{Content: "x"}}, nil)
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}
