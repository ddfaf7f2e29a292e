package bundle

import (
	"testing"

	"KasaMarket/app/api/assistant/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot([]catalog.Product{
		{Id: "1", Name: "Gari", Category: "grains", Price: 800, InStock: true},
		{Id: "2", Name: "Jasmine Rice 5kg", Category: "grains", Price: 1200, InStock: true},
		{Id: "3", Name: "Broken Rice", Category: "grains", Price: 100, InStock: false},
		{Id: "4", Name: "Tilapia", Category: "fish", Price: 2500, InStock: true},
		{Id: "5", Name: "Eggs (crate)", Category: "eggs", Price: 3000, InStock: true},
		{Id: "6", Name: "Kontomire", Category: "vegetables", Price: 400, InStock: true},
		{Id: "7", Name: "Tomatoes", Category: "vegetables", Price: 500, InStock: true},
		{Id: "8", Name: "Key Soap", Category: "household", Price: 700, InStock: true},
		{Id: "9", Name: "Plantain Chips", Category: "snacks", Price: 300, InStock: true},
		{Id: "10", Name: "Milo", Category: "beverages", Price: 1800, InStock: true},
	})
}

func TestBuildFamilyOfFour(t *testing.T) {
	got := Build(fixtureSnapshot(), Request{FamilySize: 4, Budget: 15000})

	require.Len(t, got.Items, 5)
	assert.Equal(t, "Gari", got.Items[0].Product.Name)
	assert.Equal(t, int64(4), got.Items[0].Quantity)
	assert.Equal(t, int64(3200), got.Items[0].Subtotal)
	assert.Equal(t, "Tilapia", got.Items[1].Product.Name)
	assert.Equal(t, int64(1), got.Items[1].Quantity)
	assert.Equal(t, "Kontomire", got.Items[2].Product.Name)
	assert.Equal(t, int64(3), got.Items[2].Quantity)
	assert.Equal(t, "Key Soap", got.Items[3].Product.Name)
	assert.Equal(t, "Plantain Chips", got.Items[4].Product.Name)

	assert.Equal(t, int64(7900), got.Total)
	assert.LessOrEqual(t, got.Total, int64(15000))
	assert.Contains(t, got.Rationale, "household of 4")
}

func TestBuildTightBudget(t *testing.T) {
	got := Build(fixtureSnapshot(), Request{FamilySize: 4, Budget: 1000})

	require.Len(t, got.Items, 1)
	assert.Equal(t, "Gari", got.Items[0].Product.Name)
	assert.Equal(t, int64(1), got.Items[0].Quantity)
	assert.Equal(t, int64(800), got.Total)
}

func TestBuildInfeasibleBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget int64
	}{
		{name: "zero", budget: 0},
		{name: "negative", budget: -500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(fixtureSnapshot(), Request{FamilySize: 2, Budget: tt.budget})
			assert.Empty(t, got.Items)
			assert.Zero(t, got.Total)
			assert.NotEmpty(t, got.Rationale)
		})
	}
}

func TestBuildBudgetBelowEveryPrice(t *testing.T) {
	got := Build(fixtureSnapshot(), Request{FamilySize: 2, Budget: 250})

	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
	assert.Contains(t, got.Rationale, "try a higher budget")
}

func TestBuildEmptyCatalog(t *testing.T) {
	got := Build(catalog.NewSnapshot(nil), Request{FamilySize: 2, Budget: 10000})

	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestBuildSkipsOutOfStock(t *testing.T) {
	// Broken Rice at 100 pesewas is the cheapest staple but is unavailable;
	// the build must never select it.
	got := Build(fixtureSnapshot(), Request{FamilySize: 4, Budget: 15000})
	for _, item := range got.Items {
		assert.True(t, item.Product.InStock)
		assert.NotEqual(t, "Broken Rice", item.Product.Name)
	}
}

func TestBuildScalesWithFamilySize(t *testing.T) {
	single := Build(fixtureSnapshot(), Request{FamilySize: 1, Budget: 15000})
	family := Build(fixtureSnapshot(), Request{FamilySize: 4, Budget: 15000})

	require.NotEmpty(t, single.Items)
	require.NotEmpty(t, family.Items)
	assert.Equal(t, int64(1), single.Items[0].Quantity)
	assert.Equal(t, int64(4), family.Items[0].Quantity)
	assert.Greater(t, family.Total, single.Total)
}

func TestBuildNeverExceedsBudget(t *testing.T) {
	for _, budget := range []int64{1, 300, 800, 2500, 5000, 7900, 15000, 100000} {
		got := Build(fixtureSnapshot(), Request{FamilySize: 6, Budget: budget})
		assert.LessOrEqual(t, got.Total, budget, "budget %d", budget)

		var sum int64
		for _, item := range got.Items {
			assert.Positive(t, item.Quantity)
			assert.Equal(t, item.Product.Price*item.Quantity, item.Subtotal)
			sum += item.Subtotal
		}
		assert.Equal(t, sum, got.Total)
	}
}

func TestBuildDeterministic(t *testing.T) {
	first := Build(fixtureSnapshot(), Request{FamilySize: 4, Budget: 15000})
	second := Build(fixtureSnapshot(), Request{FamilySize: 4, Budget: 15000})
	assert.Equal(t, first, second)
}

func TestBuildPriceTieKeepsCatalogOrder(t *testing.T) {
	snap := catalog.NewSnapshot([]catalog.Product{
		{Id: "1", Name: "White Rice", Category: "grains", Price: 1000, InStock: true},
		{Id: "2", Name: "Brown Rice", Category: "grains", Price: 1000, InStock: true},
	})
	got := Build(snap, Request{FamilySize: 1, Budget: 5000})

	require.NotEmpty(t, got.Items)
	assert.Equal(t, "White Rice", got.Items[0].Product.Name)
}

func TestPolicyForRole(t *testing.T) {
	t.Run("unknown role keeps default order", func(t *testing.T) {
		plans := PolicyForRole("trader")
		require.Len(t, plans, 5)
		assert.Equal(t, "staples", plans[0].Label)
		assert.Equal(t, "extras", plans[4].Label)
	})

	t.Run("student shifts toward staples", func(t *testing.T) {
		def := DefaultPolicy()
		student := PolicyForRole("university student")
		assert.Greater(t, student[0].Share, def[0].Share)
	})

	t.Run("shares stay normalized", func(t *testing.T) {
		for _, role := range []string{"", "student", "parent", "family of five"} {
			total := 0.0
			for _, plan := range PolicyForRole(role) {
				total += plan.Share
			}
			assert.InDelta(t, 1.0, total, 1e-9, "role %q", role)
		}
	})
}
