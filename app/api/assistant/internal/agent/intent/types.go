package intent

// Kind is the classified purpose of a user message.
type Kind string

const (
	KindGreeting              Kind = "greeting"
	KindBudgetRequest         Kind = "budget_request"
	KindGenericRecommendation Kind = "generic_recommendation"
	KindFreeTextSearch        Kind = "free_text_search"
)

// Decision is the classifier output. Budget is set (in pesewas) only for
// KindBudgetRequest; Query is the raw trimmed text for KindFreeTextSearch.
type Decision struct {
	Kind   Kind
	Budget int64
	Query  string
}

func (d Decision) IsBudget() bool {
	return d.Kind == KindBudgetRequest
}
