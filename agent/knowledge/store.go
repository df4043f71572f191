package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

// Store persists embedded passages and supports similarity search.
type Store interface {
	Upsert(ctx context.Context, passages []contractx.Passage, vectors [][]float64) error
	Search(ctx context.Context, vector []float64, k int) ([]contractx.ScoredPassage, error)
	Len(ctx context.Context) (int, error)
}

// MemoryStore ranks by brute-force dot product over L2-normalized vectors and
// optionally snapshots its contents to a JSON file so a restart reopens the
// same index instead of re-embedding the corpus.
type MemoryStore struct {
	mu           sync.RWMutex
	passages     []contractx.Passage
	vectors      [][]float64
	snapshotPath string
}

type snapshot struct {
	Passages []contractx.Passage `json:"passages"`
	Vectors  [][]float64         `json:"vectors"`
}

// MemoryStoreOption customizes a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSnapshotPath enables disk persistence at the given path.
func WithSnapshotPath(path string) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.snapshotPath = path
	}
}

// NewMemoryStore creates a store, reopening the snapshot file when one exists.
func NewMemoryStore(opts ...MemoryStoreOption) (*MemoryStore, error) {
	s := &MemoryStore{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.snapshotPath != "" {
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("load knowledge snapshot: %w", err)
		}
	}
	return s, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, passages []contractx.Passage, vectors [][]float64) error {
	if len(passages) != len(vectors) {
		return errors.New("passages and vectors length mismatch")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.passages = append(s.passages, passages...)
	s.vectors = append(s.vectors, vectors...)

	if s.snapshotPath != "" {
		if err := s.persistLocked(); err != nil {
			return fmt.Errorf("persist knowledge snapshot: %w", err)
		}
	}
	return nil
}

func (s *MemoryStore) Search(ctx context.Context, vector []float64, k int) ([]contractx.ScoredPassage, error) {
	if k <= 0 {
		k = 3
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]contractx.ScoredPassage, 0, len(s.passages))
	for i, p := range s.passages {
		results = append(results, contractx.ScoredPassage{
			Passage: p,
			Score:   dot(s.vectors[i], vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

func (s *MemoryStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.passages), nil
}

func (s *MemoryStore) load() error {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if len(snap.Passages) != len(snap.Vectors) {
		return errors.New("snapshot passages and vectors length mismatch")
	}

	s.passages = snap.Passages
	s.vectors = snap.Vectors
	return nil
}

func (s *MemoryStore) persistLocked() error {
	data, err := json.Marshal(snapshot{
		Passages: s.passages,
		Vectors:  s.vectors,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.snapshotPath, data, 0o644)
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
