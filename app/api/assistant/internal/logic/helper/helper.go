package helper

import (
	"encoding/json"

	"KasaMarket/app/api/assistant/internal/agent/respond"
	"KasaMarket/app/api/assistant/internal/types"
)

// ToCartData maps the engine's cart payload onto the wire type. Nil in,
// nil out: a greeting or zero-match reply carries no cart.
func ToCartData(cart *respond.CartData) *types.CartData {
	if cart == nil {
		return nil
	}

	products := make([]types.CartProduct, 0, len(cart.Products))
	for _, p := range cart.Products {
		products = append(products, types.CartProduct{
			Id:       p.Id,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
			Reason:   p.Reason,
		})
	}

	return &types.CartData{
		Products:     products,
		TotalSavings: cart.TotalSavings,
		Budget:       cart.Budget,
		Rationale:    cart.Rationale,
	}
}

// MarshalCart serializes a wire cart for thread storage; empty when nil.
func MarshalCart(cart *types.CartData) string {
	if cart == nil {
		return ""
	}
	body, err := json.Marshal(cart)
	if err != nil {
		return ""
	}
	return string(body)
}

// UnmarshalCart restores a stored cart payload; nil for empty or bad data.
func UnmarshalCart(raw string) *types.CartData {
	if raw == "" {
		return nil
	}
	var cart types.CartData
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil
	}
	return &cart
}
