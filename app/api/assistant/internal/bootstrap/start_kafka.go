package bootstrap

import (
	"context"

	"KasaMarket/app/api/assistant/internal/mq"
	"KasaMarket/app/api/assistant/internal/svc"
)

// StartKafka starts the product events consumer if configured; returns a stop func.
func StartKafka(sc *svc.ServiceContext) func() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = mq.StartProductEventsConsumer(ctx, sc) }()
	return func() { cancel() }
}
