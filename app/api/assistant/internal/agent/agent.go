package agent

import (
	"context"
	"math"
	"strings"

	"KasaMarket/app/api/assistant/internal/agent/bundle"
	"KasaMarket/app/api/assistant/internal/agent/intent"
	"KasaMarket/app/api/assistant/internal/agent/match"
	"KasaMarket/app/api/assistant/internal/agent/respond"
	"KasaMarket/app/api/assistant/internal/augment"
	"KasaMarket/app/api/assistant/internal/catalog"
	"KasaMarket/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const defaultResultLimit = 8

// Agent is the chat orchestrator: classify, then match or build, then
// format. It is stateless per call and reads an immutable catalog snapshot,
// so concurrent requests need no coordination.
type Agent struct {
	catalog   *catalog.Store
	augmenter augment.TextAugmenter
}

// Req is one chat invocation. Budget is decimal cedis from the caller's
// context; an amount found in the message text takes precedence over it.
type Req struct {
	Message    string
	Role       string
	FamilySize int64
	Budget     float64
}

// Result is the assistant's reply. Cart is nil when no products apply.
type Result struct {
	Intent  intent.Kind
	Message string
	Cart    *respond.CartData
}

func New(store *catalog.Store, augmenter augment.TextAugmenter) *Agent {
	return &Agent{
		catalog:   store,
		augmenter: augmenter,
	}
}

// Handle answers a single message. The only failure it surfaces is an empty
// message; everything else resolves to a normal reply, including zero search
// hits and infeasible budgets.
func (a *Agent) Handle(ctx context.Context, req Req) (*Result, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, errors.New(int(errno.InvalidParam), "message is required")
	}

	snap := a.catalog.Snapshot()
	decision := intent.Classify(message)

	// a recommendation ask with a stated context budget becomes a budget build
	if decision.Kind == intent.KindGenericRecommendation {
		if ctxBudget := toPesewas(req.Budget); ctxBudget > 0 {
			decision = intent.Decision{Kind: intent.KindBudgetRequest, Budget: ctxBudget}
		}
	}

	var res respond.Result
	switch decision.Kind {
	case intent.KindGreeting:
		res = respond.Greeting()
	case intent.KindBudgetRequest:
		b := bundle.Build(snap, bundle.Request{
			Role:       req.Role,
			FamilySize: req.FamilySize,
			Budget:     decision.Budget,
		})
		res = respond.BudgetBundle(b, decision.Budget)
	case intent.KindGenericRecommendation:
		res = respond.Popular(snap.Popular(defaultResultLimit))
	default:
		hits := match.FindProductsByQuery(snap, decision.Query)
		if len(hits) > defaultResultLimit {
			hits = hits[:defaultResultLimit]
		}
		res = respond.SearchResults(decision.Query, hits)
	}

	result := &Result{
		Intent:  decision.Kind,
		Message: res.Message,
		Cart:    res.Cart,
	}

	// best-effort polish; the deterministic reply already stands on its own
	if a.augmenter != nil {
		if enriched, err := a.augmenter.TryEnrich(ctx, message, res.Message); err != nil {
			logx.WithContext(ctx).Infof("reply enrichment skipped: %v", err)
		} else if strings.TrimSpace(enriched) != "" {
			result.Message = enriched
		}
	}

	return result, nil
}

func toPesewas(cedis float64) int64 {
	if cedis <= 0 {
		return 0
	}
	return int64(math.Round(cedis * 100))
}
