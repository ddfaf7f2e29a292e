package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"

	"KasaMarket/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
)

// Loader is the slice of the products model the store needs. The dal model
// satisfies it; tests supply fixtures.
type Loader interface {
	FindAll(ctx context.Context) ([]*product.Products, error)
}

// Store holds the current catalog snapshot and swaps it atomically on
// reload. Readers always get a consistent, immutable view.
type Store struct {
	loader   Loader
	snapshot atomic.Pointer[Snapshot]
}

func NewStore(loader Loader) *Store {
	s := &Store{loader: loader}
	s.snapshot.Store(NewSnapshot(nil))
	return s
}

// Snapshot returns the current catalog view. Never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Reload replaces the snapshot from the database. On failure the previous
// snapshot stays in place so the assistant keeps answering from stale data.
func (s *Store) Reload(ctx context.Context) error {
	rows, err := s.loader.FindAll(ctx)
	if err != nil && err != product.ErrNotFound {
		return err
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		products = append(products, fromRow(row))
	}

	s.snapshot.Store(NewSnapshot(products))
	logx.WithContext(ctx).Infow("catalog snapshot reloaded", logx.Field("products", len(products)))
	return nil
}

func fromRow(row *product.Products) Product {
	specs := map[string]string{}
	if row.SpecJson != "" {
		if err := json.Unmarshal([]byte(row.SpecJson), &specs); err != nil {
			specs = map[string]string{}
		}
	}
	return Product{
		Id:             strconv.FormatInt(row.Id, 10),
		Name:           row.Name,
		Description:    row.Description,
		Category:       row.Category,
		Price:          row.Price,
		Specifications: specs,
		InStock:        row.InStock > 0,
		Sold:           row.Sold,
	}
}
