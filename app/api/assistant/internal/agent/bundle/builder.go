package bundle

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"KasaMarket/app/api/assistant/internal/catalog"
	"KasaMarket/app/common/consts/biz"
)

// Item is one selected product with a positive quantity.
type Item struct {
	Product  catalog.Product
	Quantity int64
	Subtotal int64 // Product.Price * Quantity, pesewas
}

// Bundle is the builder output. Items keep selection order; Total never
// exceeds the requested budget.
type Bundle struct {
	Items     []Item
	Total     int64
	Rationale string
}

// Request carries the household context for a budget build.
type Request struct {
	Role       string
	FamilySize int64
	Budget     int64 // pesewas
}

// Build greedily fills category slots in policy order, cheapest suitable
// in-stock product first, scaling quantities to household size. All
// arithmetic is in integer pesewas, so the budget comparison is exact.
//
// An infeasible budget (zero, negative, or below every price) yields an
// empty bundle with an explanatory rationale; that is a valid result, not
// an error.
func Build(snap *catalog.Snapshot, req Request) Bundle {
	familySize := req.FamilySize
	if familySize < 1 {
		familySize = 1
	}

	if req.Budget <= 0 || !snap.HasStock() {
		return Bundle{
			Rationale: "No selection was possible: the budget must be a positive amount and the store must have stock available.",
		}
	}

	plans := PolicyForRole(req.Role)
	floor := cheapestInStock(snap)

	var (
		items   []Item
		total   int64
		covered []string
	)

	for _, plan := range plans {
		if req.Budget-total < floor {
			break
		}

		pick, ok := cheapestFor(snap, plan, req.Budget-total)
		if !ok {
			continue
		}

		allocation := int64(math.Round(plan.Share * float64(req.Budget)))
		targetQty := int64(math.Round(float64(familySize) * plan.PerMember))
		if targetQty < 1 {
			targetQty = 1
		}

		var qty, spend int64
		for q := int64(1); q <= targetQty; q++ {
			if total+spend+pick.Price > req.Budget {
				break
			}
			// first unit guarantees slot coverage even past its allocation
			if q > 1 && spend+pick.Price > allocation {
				break
			}
			spend += pick.Price
			qty++
		}
		if qty == 0 {
			continue
		}

		items = append(items, Item{Product: pick, Quantity: qty, Subtotal: spend})
		total += spend
		covered = append(covered, plan.Label)
	}

	return Bundle{
		Items:     items,
		Total:     total,
		Rationale: rationale(req, familySize, covered, total),
	}
}

// cheapestFor picks the cheapest in-stock product in the plan's categories
// that fits the remaining budget. Equal prices keep catalog order.
func cheapestFor(snap *catalog.Snapshot, plan CategoryPlan, remaining int64) (catalog.Product, bool) {
	var candidates []catalog.Product
	for _, p := range snap.Products() {
		if p.InStock && plan.matches(p.Category) && p.Price <= remaining {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return catalog.Product{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price < candidates[j].Price
	})
	return candidates[0], true
}

func cheapestInStock(snap *catalog.Snapshot) int64 {
	floor := int64(math.MaxInt64)
	for _, p := range snap.Products() {
		if p.InStock && p.Price < floor {
			floor = p.Price
		}
	}
	return floor
}

func rationale(req Request, familySize int64, covered []string, total int64) string {
	if len(covered) == 0 {
		return fmt.Sprintf("No item in the catalog fits within %s%.2f; try a higher budget.",
			biz.CurrencySymbol, float64(req.Budget)/100)
	}
	return fmt.Sprintf("Prioritized %s for a household of %d, picking the cheapest suitable option per category to stay within %s%.2f (spent %s%.2f).",
		strings.Join(covered, ", "), familySize,
		biz.CurrencySymbol, float64(req.Budget)/100,
		biz.CurrencySymbol, float64(total)/100)
}
