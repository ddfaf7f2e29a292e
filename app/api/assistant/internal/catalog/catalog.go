package catalog

import "sort"

// Product is a read-only catalog entry. Price is in pesewas (1 cedi = 100
// pesewas) so running totals stay exact; display converts to cedis.
type Product struct {
	Id             string
	Name           string
	Description    string
	Category       string
	Price          int64
	Specifications map[string]string
	InStock        bool
	Sold           int64
}

// Snapshot is an immutable view of the catalog. Slice order is the catalog
// order and is the tie-break order everywhere downstream.
type Snapshot struct {
	products []Product
}

func NewSnapshot(products []Product) *Snapshot {
	cloned := make([]Product, len(products))
	copy(cloned, products)
	return &Snapshot{products: cloned}
}

// Products returns the catalog in catalog order. Callers must not mutate.
func (s *Snapshot) Products() []Product {
	if s == nil {
		return nil
	}
	return s.products
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.products)
}

// Popular returns up to n in-stock products ordered by units sold, ties in
// catalog order. Used for generic "recommend something" requests.
func (s *Snapshot) Popular(n int) []Product {
	if s == nil || n <= 0 {
		return nil
	}

	top := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.InStock {
			top = append(top, p)
		}
	}
	// stable sort keeps catalog order for equal sold counts
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Sold > top[j].Sold
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// HasStock reports whether any product is currently in stock.
func (s *Snapshot) HasStock() bool {
	if s == nil {
		return false
	}
	for _, p := range s.products {
		if p.InStock {
			return true
		}
	}
	return false
}
