package bundle

import "strings"

// CategoryPlan is one slot of the selection policy. Plans are applied in
// slice order, so earlier entries are filled first.
type CategoryPlan struct {
	Label      string   // name used in rationale text
	Categories []string // catalog category labels that satisfy the slot
	Share      float64  // notional fraction of the budget for the slot
	PerMember  float64  // target units per household member
}

// DefaultPolicy orders staples before proteins, perishables and extras so a
// tight budget buys essentials first. Shares are notional allocations, not
// hard caps: the first unit of a slot may exceed its share, never the budget.
func DefaultPolicy() []CategoryPlan {
	return []CategoryPlan{
		{Label: "staples", Categories: []string{"grains", "rice", "flour", "tubers", "staples"}, Share: 0.35, PerMember: 1.0},
		{Label: "protein", Categories: []string{"protein", "meat", "fish", "eggs", "beans"}, Share: 0.25, PerMember: 0.75},
		{Label: "vegetables", Categories: []string{"vegetables", "produce", "perishables", "fruits"}, Share: 0.20, PerMember: 0.75},
		{Label: "household", Categories: []string{"household", "toiletries", "cleaning"}, Share: 0.12, PerMember: 0.25},
		{Label: "extras", Categories: []string{"snacks", "beverages", "extras"}, Share: 0.08, PerMember: 0.25},
	}
}

// PolicyForRole tweaks the default shares for common household descriptors.
// Unknown roles get the default mix.
func PolicyForRole(role string) []CategoryPlan {
	plans := DefaultPolicy()
	switch {
	case strings.Contains(strings.ToLower(role), "student"):
		adjust(plans, map[string]float64{"staples": 0.42, "extras": 0.12, "household": 0.06})
	case strings.Contains(strings.ToLower(role), "parent"), strings.Contains(strings.ToLower(role), "family"):
		adjust(plans, map[string]float64{"protein": 0.28, "vegetables": 0.24, "extras": 0.05})
	}
	return plans
}

func adjust(plans []CategoryPlan, shares map[string]float64) {
	total := 0.0
	for i := range plans {
		if v, ok := shares[plans[i].Label]; ok {
			plans[i].Share = v
		}
		total += plans[i].Share
	}
	if total <= 0 {
		return
	}
	for i := range plans {
		plans[i].Share = plans[i].Share / total
	}
}

// matches reports whether the product category satisfies the plan.
func (p CategoryPlan) matches(category string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		return false
	}
	for _, label := range p.Categories {
		if strings.Contains(cat, label) || strings.Contains(label, cat) {
			return true
		}
	}
	return false
}
