package agent

import (
	"context"
	"errors"
	"testing"

	"KasaMarket/app/api/assistant/internal/agent/intent"
	"KasaMarket/app/api/assistant/internal/catalog"
	"KasaMarket/app/dal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureLoader struct {
	rows []*product.Products
}

func (f fixtureLoader) FindAll(ctx context.Context) ([]*product.Products, error) {
	return f.rows, nil
}

func fixtureRows() []*product.Products {
	return []*product.Products{
		{Id: 1, Name: "Gari", Category: "grains", Description: "toasted cassava granules", Price: 800, InStock: 1, Sold: 120},
		{Id: 2, Name: "Jasmine Rice 5kg", Category: "grains", Description: "fragrant long grain rice", Price: 1200, InStock: 1, Sold: 340},
		{Id: 3, Name: "Tilapia", Category: "fish", Description: "fresh whole tilapia", Price: 2500, InStock: 1, Sold: 85},
		{Id: 4, Name: "Kontomire", Category: "vegetables", Description: "cocoyam leaves", Price: 400, InStock: 1, Sold: 60},
		{Id: 5, Name: "Key Soap", Category: "household", Description: "laundry bar", Price: 700, InStock: 1, Sold: 200},
		{Id: 6, Name: "Plantain Chips", Category: "snacks", Description: "crunchy ripe plantain", Price: 300, InStock: 1, Sold: 410},
		{Id: 7, Name: "Basmati Rice 5kg", Category: "grains", Description: "aromatic basmati", Price: 2200, InStock: 0, Sold: 500},
	}
}

type stubAugmenter struct {
	reply string
	err   error
	calls int
}

func (s *stubAugmenter) TryEnrich(ctx context.Context, userMessage, reply string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestAgent(t *testing.T, rows []*product.Products) *Agent {
	t.Helper()
	store := catalog.NewStore(fixtureLoader{rows: rows})
	require.NoError(t, store.Reload(context.Background()))
	return New(store, nil)
}

func TestHandleEmptyMessage(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	_, err := a.Handle(context.Background(), Req{Message: "   "})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
}

func TestHandleGreeting(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{Message: "hello there"})

	require.NoError(t, err)
	assert.Equal(t, intent.KindGreeting, got.Intent)
	assert.Contains(t, got.Message, "Akwaaba")
	assert.Nil(t, got.Cart)
}

func TestHandleBudgetRequest(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{
		Message:    "I have a budget of 150 for my family",
		FamilySize: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, intent.KindBudgetRequest, got.Intent)
	require.NotNil(t, got.Cart)
	require.NotNil(t, got.Cart.Budget)
	assert.Equal(t, 150.0, *got.Cart.Budget)
	assert.NotEmpty(t, got.Cart.Products)

	var total float64
	for _, p := range got.Cart.Products {
		total += p.Price * float64(p.Quantity)
	}
	assert.LessOrEqual(t, total, 150.0)
	assert.InDelta(t, 150.0-total, got.Cart.TotalSavings, 1e-9)
}

func TestHandleMessageBudgetOverridesContext(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{
		Message:    "my budget is 20",
		FamilySize: 2,
		Budget:     500, // profile amount loses to the one in the message
	})

	require.NoError(t, err)
	assert.Equal(t, intent.KindBudgetRequest, got.Intent)
	require.NotNil(t, got.Cart)
	require.NotNil(t, got.Cart.Budget)
	assert.Equal(t, 20.0, *got.Cart.Budget)
}

func TestHandleGenericRecommendation(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{Message: "what should I buy"})

	require.NoError(t, err)
	assert.Equal(t, intent.KindGenericRecommendation, got.Intent)
	require.NotNil(t, got.Cart)
	require.NotEmpty(t, got.Cart.Products)
	// most sold in-stock product leads; the out-of-stock bestseller is absent
	assert.Equal(t, "Plantain Chips", got.Cart.Products[0].Name)
	for _, p := range got.Cart.Products {
		assert.NotEqual(t, "Basmati Rice 5kg", p.Name)
	}
}

func TestHandleRecommendationWithContextBudget(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{
		Message:    "recommend something for me",
		FamilySize: 3,
		Budget:     80,
	})

	require.NoError(t, err)
	assert.Equal(t, intent.KindBudgetRequest, got.Intent)
	require.NotNil(t, got.Cart)
	require.NotNil(t, got.Cart.Budget)
	assert.Equal(t, 80.0, *got.Cart.Budget)
}

func TestHandleFreeTextSearch(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{Message: "do you have tilapia"})

	require.NoError(t, err)
	assert.Equal(t, intent.KindFreeTextSearch, got.Intent)
	require.NotNil(t, got.Cart)
	require.Len(t, got.Cart.Products, 1)
	assert.Equal(t, "Tilapia", got.Cart.Products[0].Name)
}

func TestHandleSearchNoHits(t *testing.T) {
	a := newTestAgent(t, fixtureRows())

	got, err := a.Handle(context.Background(), Req{Message: "flying carpets"})

	require.NoError(t, err)
	assert.Equal(t, intent.KindFreeTextSearch, got.Intent)
	assert.Nil(t, got.Cart)
	assert.Contains(t, got.Message, "**budget**")
}

func TestHandleAugmenterSuccess(t *testing.T) {
	store := catalog.NewStore(fixtureLoader{rows: fixtureRows()})
	require.NoError(t, store.Reload(context.Background()))
	aug := &stubAugmenter{reply: "polished reply"}
	a := New(store, aug)

	got, err := a.Handle(context.Background(), Req{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, 1, aug.calls)
	assert.Equal(t, "polished reply", got.Message)
}

func TestHandleAugmenterEmptyReplyKeepsDeterministicMessage(t *testing.T) {
	store := catalog.NewStore(fixtureLoader{rows: fixtureRows()})
	require.NoError(t, store.Reload(context.Background()))
	aug := &stubAugmenter{reply: "   "}
	a := New(store, aug)

	got, err := a.Handle(context.Background(), Req{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, 1, aug.calls)
	assert.Contains(t, got.Message, "Akwaaba")
}

func TestHandleAugmenterFailureKeepsReply(t *testing.T) {
	store := catalog.NewStore(fixtureLoader{rows: fixtureRows()})
	require.NoError(t, store.Reload(context.Background()))
	aug := &stubAugmenter{err: errors.New("model unavailable")}
	a := New(store, aug)

	got, err := a.Handle(context.Background(), Req{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, 1, aug.calls)
	assert.Contains(t, got.Message, "Akwaaba")
}

func TestHandleEmptyCatalogBudget(t *testing.T) {
	a := newTestAgent(t, nil)

	got, err := a.Handle(context.Background(), Req{Message: "I have a budget of 100", FamilySize: 2})

	require.NoError(t, err)
	assert.Equal(t, intent.KindBudgetRequest, got.Intent)
	assert.Nil(t, got.Cart)
	assert.Contains(t, got.Message, "couldn't fit a basket")
}
