package augment

import "context"

// TextAugmenter optionally rewrites a deterministic reply into warmer prose.
// It is strictly best-effort: any error, timeout or empty result means the
// caller keeps the deterministic message. Implementations must never be on
// the critical path of a response.
type TextAugmenter interface {
	TryEnrich(ctx context.Context, userMessage, reply string) (string, error)
}
