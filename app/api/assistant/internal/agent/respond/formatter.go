package respond

import (
	"fmt"
	"strings"

	"KasaMarket/app/api/assistant/internal/agent/bundle"
	"KasaMarket/app/api/assistant/internal/catalog"
	"KasaMarket/app/common/consts/biz"
)

// Result pairs the reply text with the structured cart payload. Bold spans
// use the in-band **text** convention; the UI renderer converts them.
type Result struct {
	Message string
	Cart    *CartData
}

// CartData is the machine-readable side of a reply. Amounts are decimal
// cedis, rounded to 2 places by construction (pesewas / 100).
type CartData struct {
	Products     []CartProduct
	TotalSavings float64
	Budget       *float64 // nil when the request carried no budget
	Rationale    string
}

type CartProduct struct {
	Id       string
	Name     string
	Price    float64
	Quantity int64
	Reason   string
}

const fallbackMessage = "I couldn't find anything matching that. Tell me your **budget** and **household size** (for example: \"I have 200 cedis for a family of 3\") and I'll put a basket together for you."

// Greeting is the static welcome reply.
func Greeting() Result {
	return Result{
		Message: "**Akwaaba! Welcome to KasaMarket.** I can recommend products, build a basket for your budget, or find items for you. Try \"I have a budget of 150\" or \"do you sell rice\".",
	}
}

// BudgetBundle renders a built basket with per-line subtotals, the total and
// the selection rationale.
func BudgetBundle(b bundle.Bundle, budget int64) Result {
	budgetCedis := Cedis(budget)

	if len(b.Items) == 0 {
		return Result{
			Message: fmt.Sprintf("**I couldn't fit a basket within %s%s.** %s", biz.CurrencySymbol, budgetCedis, b.Rationale),
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Here's a basket for your %s%s budget:**\n", biz.CurrencySymbol, budgetCedis))

	products := make([]CartProduct, 0, len(b.Items))
	for _, item := range b.Items {
		sb.WriteString(fmt.Sprintf("- %s x%d - %s%s each, %s%s\n",
			item.Product.Name, item.Quantity,
			biz.CurrencySymbol, Cedis(item.Product.Price),
			biz.CurrencySymbol, Cedis(item.Subtotal)))
		products = append(products, CartProduct{
			Id:       item.Product.Id,
			Name:     item.Product.Name,
			Price:    cedisValue(item.Product.Price),
			Quantity: item.Quantity,
			Reason:   fmt.Sprintf("Fits your %s%s budget", biz.CurrencySymbol, budgetCedis),
		})
	}
	sb.WriteString(fmt.Sprintf("**Total: %s%s**\n%s", biz.CurrencySymbol, Cedis(b.Total), b.Rationale))

	budgetVal := cedisValue(budget)
	savings := cedisValue(budget - b.Total)
	return Result{
		Message: sb.String(),
		Cart: &CartData{
			Products:     products,
			TotalSavings: savings,
			Budget:       &budgetVal,
			Rationale:    b.Rationale,
		},
	}
}

// Popular renders the generic recommendation list.
func Popular(products []catalog.Product) Result {
	if len(products) == 0 {
		return Result{Message: fallbackMessage}
	}

	var sb strings.Builder
	sb.WriteString("**Our most popular products:**\n")
	cartProducts := make([]CartProduct, 0, len(products))
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("- %s - %s%s\n", p.Name, biz.CurrencySymbol, Cedis(p.Price)))
		cartProducts = append(cartProducts, CartProduct{
			Id:       p.Id,
			Name:     p.Name,
			Price:    cedisValue(p.Price),
			Quantity: 1,
			Reason:   "Popular with other shoppers",
		})
	}

	return Result{
		Message: sb.String(),
		Cart: &CartData{
			Products:     cartProducts,
			TotalSavings: 0,
			Rationale:    "These are our most popular products",
		},
	}
}

// SearchResults renders keyword matches; zero matches fall back to the
// static help message with no cart.
func SearchResults(query string, products []catalog.Product) Result {
	if len(products) == 0 {
		return Result{Message: fallbackMessage}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Found %d product(s) matching \"%s\":**\n", len(products), query))
	cartProducts := make([]CartProduct, 0, len(products))
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("- %s - %s%s\n", p.Name, biz.CurrencySymbol, Cedis(p.Price)))
		cartProducts = append(cartProducts, CartProduct{
			Id:       p.Id,
			Name:     p.Name,
			Price:    cedisValue(p.Price),
			Quantity: 1,
			Reason:   fmt.Sprintf("Matched your search \"%s\"", query),
		})
	}

	return Result{
		Message: sb.String(),
		Cart: &CartData{
			Products:     cartProducts,
			TotalSavings: 0,
			Rationale:    fmt.Sprintf("Found %d product(s) matching \"%s\"", len(products), query),
		},
	}
}

// Cedis formats pesewas as a 2-decimal cedi string without the symbol.
func Cedis(pesewas int64) string {
	return fmt.Sprintf("%.2f", float64(pesewas)/100)
}

func cedisValue(pesewas int64) float64 {
	return float64(pesewas) / 100
}
