package match

import (
	"testing"

	"KasaMarket/app/api/assistant/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot([]catalog.Product{
		{Id: "1", Name: "Jasmine Rice 5kg", Category: "grains", Description: "fragrant long grain rice", Price: 1200, InStock: true},
		{Id: "2", Name: "Gari", Category: "grains", Description: "toasted cassava granules", Price: 800, InStock: true},
		{Id: "3", Name: "Tilapia", Category: "fish", Description: "fresh whole tilapia", Price: 2500, InStock: true},
		{Id: "4", Name: "Rice Flour", Category: "flour", Description: "fine milled rice flour", Price: 900, InStock: true},
		{Id: "5", Name: "Basmati Rice 5kg", Category: "grains", Description: "aromatic basmati", Price: 2200, InStock: false},
	})
}

func TestFindProductsByQuery(t *testing.T) {
	snap := fixtureSnapshot()

	t.Run("single token ranks by overlap", func(t *testing.T) {
		got := FindProductsByQuery(snap, "rice")
		require.Len(t, got, 2)
		// both score 1; catalog order breaks the tie
		assert.Equal(t, "Jasmine Rice 5kg", got[0].Name)
		assert.Equal(t, "Rice Flour", got[1].Name)
	})

	t.Run("multi token query prefers more overlap", func(t *testing.T) {
		got := FindProductsByQuery(snap, "rice flour")
		require.NotEmpty(t, got)
		assert.Equal(t, "Rice Flour", got[0].Name)
	})

	t.Run("matches category and description", func(t *testing.T) {
		got := FindProductsByQuery(snap, "cassava")
		require.Len(t, got, 1)
		assert.Equal(t, "Gari", got[0].Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FindProductsByQuery(snap, "TILAPIA")
		require.Len(t, got, 1)
		assert.Equal(t, "Tilapia", got[0].Name)
	})

	t.Run("out of stock excluded", func(t *testing.T) {
		got := FindProductsByQuery(snap, "basmati")
		assert.Empty(t, got)
	})

	t.Run("zero matches is empty not nil panic", func(t *testing.T) {
		got := FindProductsByQuery(snap, "unicorns")
		assert.Empty(t, got)
	})

	t.Run("blank query", func(t *testing.T) {
		assert.Empty(t, FindProductsByQuery(snap, "   "))
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := FindProductsByQuery(snap, "rice grains")
		second := FindProductsByQuery(snap, "rice grains")
		assert.Equal(t, first, second)
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "whitespace split", query: "jasmine rice", want: []string{"jasmine", "rice"}},
		{name: "punctuation split", query: "rice, beans & oil!", want: []string{"rice", "beans", "oil"}},
		{name: "lowercased", query: "RICE", want: []string{"rice"}},
		{name: "empty", query: "  ", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.query))
		})
	}
}
