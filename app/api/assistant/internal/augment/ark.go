package augment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/schema"
)

const defaultTimeout = 3 * time.Second

const enrichSystemPrompt = `You are the voice of KasaMarket, a friendly Ghanaian online grocery.
You will receive a shopper's message and a draft reply that already contains the correct products, quantities, prices and totals.
Rewrite the draft to sound warm and natural. Keep every product name, quantity, amount and every **bold** marker exactly as given. Do not add, remove or invent products or prices. Reply with the rewritten text only.`

// ArkAugmenter enriches replies through an ark chat model. One attempt with
// a bounded timeout; no retries, the deterministic reply is already complete.
type ArkAugmenter struct {
	model   *ark.ChatModel
	timeout time.Duration
}

func NewArkAugmenter(ctx context.Context, baseURL, apiKey, model string, timeout time.Duration) (*ArkAugmenter, error) {
	cm, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	})
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ArkAugmenter{model: cm, timeout: timeout}, nil
}

func (a *ArkAugmenter) TryEnrich(ctx context.Context, userMessage, reply string) (string, error) {
	if a == nil || a.model == nil {
		return "", errors.New("augmenter unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var sb strings.Builder
	sb.WriteString("Shopper message: ")
	sb.WriteString(userMessage)
	sb.WriteString("\nDraft reply:\n")
	sb.WriteString(reply)

	messages := []*schema.Message{
		schema.SystemMessage(enrichSystemPrompt),
		schema.UserMessage(sb.String()),
	}

	out, err := a.model.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", errors.New("empty enrichment")
	}
	return strings.TrimSpace(out.Content), nil
}
