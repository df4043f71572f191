// Package pgstore provides a Postgres-backed knowledge store for deployments
// where the index must outlive the local filesystem.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
	"github.com/farhanfadillahr/shipping-price-checker/agent/knowledge"
)

type passageRow struct {
	bun.BaseModel `bun:"table:knowledge_passages,alias:kp"`

	ID       int64     `bun:"id,pk,autoincrement"`
	Content  string    `bun:"content,notnull"`
	Category string    `bun:"category"`
	Vector   []float64 `bun:"vector,type:jsonb"`
}

// Store keeps passages in a knowledge_passages table. Similarity ranking runs
// in-process over the full table; the corpus is small and read-mostly.
type Store struct {
	db *bun.DB
}

var _ knowledge.Store = (*Store)(nil)

// New connects with the given DSN and ensures the table exists.
func New(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if _, err := db.NewCreateTable().
		Model((*passageRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("create knowledge_passages table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Upsert(ctx context.Context, passages []contractx.Passage, vectors [][]float64) error {
	if len(passages) != len(vectors) {
		return errors.New("passages and vectors length mismatch")
	}
	if len(passages) == 0 {
		return nil
	}

	rows := make([]passageRow, len(passages))
	for i, p := range passages {
		rows[i] = passageRow{
			Content:  p.Content,
			Category: p.Category,
			Vector:   vectors[i],
		}
	}

	if _, err := s.db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("insert passages: %w", err)
	}
	return nil
}

func (s *Store) Search(ctx context.Context, vector []float64, k int) ([]contractx.ScoredPassage, error) {
	if k <= 0 {
		k = 3
	}

	var rows []passageRow
	if err := s.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, fmt.Errorf("select passages: %w", err)
	}

	results := make([]contractx.ScoredPassage, 0, len(rows))
	for _, row := range rows {
		results = append(results, contractx.ScoredPassage{
			Passage: contractx.Passage{
				Content:  row.Content,
				Category: row.Category,
			},
			Score: dot(row.Vector, vector),
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

func (s *Store) Len(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().Model((*passageRow)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count passages: %w", err)
	}
	return n, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
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
