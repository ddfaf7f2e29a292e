package helper

import (
	"testing"

	"KasaMarket/app/api/assistant/internal/agent/respond"
	"KasaMarket/app/api/assistant/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCartData(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, ToCartData(nil))
	})

	t.Run("maps fields", func(t *testing.T) {
		budget := 150.0
		got := ToCartData(&respond.CartData{
			Products: []respond.CartProduct{
				{Id: "1", Name: "Gari", Price: 8.0, Quantity: 4, Reason: "Fits your GH₵150.00 budget"},
			},
			TotalSavings: 118.0,
			Budget:       &budget,
			Rationale:    "cheapest suitable option per category",
		})

		require.NotNil(t, got)
		require.Len(t, got.Products, 1)
		assert.Equal(t, "Gari", got.Products[0].Name)
		assert.Equal(t, int64(4), got.Products[0].Quantity)
		assert.Equal(t, 118.0, got.TotalSavings)
		require.NotNil(t, got.Budget)
		assert.Equal(t, 150.0, *got.Budget)
	})
}

func TestCartStorageRoundTrip(t *testing.T) {
	budget := 20.0
	cart := &types.CartData{
		Products: []types.CartProduct{
			{Id: "1", Name: "Gari", Price: 8.0, Quantity: 1, Reason: "Fits your GH₵20.00 budget"},
		},
		TotalSavings: 12.0,
		Budget:       &budget,
		Rationale:    "staples first",
	}

	stored := MarshalCart(cart)
	require.NotEmpty(t, stored)

	got := UnmarshalCart(stored)
	require.NotNil(t, got)
	assert.Equal(t, cart, got)
}

func TestCartStorageEdges(t *testing.T) {
	assert.Empty(t, MarshalCart(nil))
	assert.Nil(t, UnmarshalCart(""))
	assert.Nil(t, UnmarshalCart("{broken"))
}
