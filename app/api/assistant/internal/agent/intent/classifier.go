package intent

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	greetingPattern = regexp.MustCompile(`^(hi|hello|hey|good (morning|afternoon|evening)|what's up|whats up|how are you|what do you do|help|start)\b`)
	numberPattern   = regexp.MustCompile(`\d[\d,]*(\.\d+)?`)
	recommendHints  = []string{"recommend", "suggest", "shopping list"}
	budgetHints     = []string{"budget", "cheap", "afford", "within"}
	whatBuyPattern  = regexp.MustCompile(`what\b.*\bbuy`)
)

// Classify maps free text onto exactly one intent. Checks run in strict
// priority order and the first match wins; anything unmatched is treated as
// a product search with the raw text as query.
func Classify(text string) Decision {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if greetingPattern.MatchString(lower) {
		return Decision{Kind: KindGreeting}
	}

	// a budget request needs both a hint word and an extractable amount
	if budget, ok := extractAmount(lower); ok && containsAny(lower, budgetHints) {
		return Decision{Kind: KindBudgetRequest, Budget: budget}
	}

	if containsAny(lower, recommendHints) || whatBuyPattern.MatchString(lower) {
		return Decision{Kind: KindGenericRecommendation}
	}

	return Decision{Kind: KindFreeTextSearch, Query: trimmed}
}

// ExtractBudget returns the first decimal amount in the text as pesewas.
func ExtractBudget(text string) (int64, bool) {
	return extractAmount(strings.ToLower(text))
}

func extractAmount(lower string) (int64, bool) {
	match := numberPattern.FindString(lower)
	if match == "" {
		return 0, false
	}
	cedis, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil || cedis < 0 {
		return 0, false
	}
	return int64(math.Round(cedis * 100)), true
}

func containsAny(text string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}
