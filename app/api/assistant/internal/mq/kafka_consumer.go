package mq

import (
	"context"
	"encoding/json"
	"time"

	"KasaMarket/app/api/assistant/internal/svc"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// StartProductEventsConsumer runs a blocking Kafka consumer loop that
// reloads the catalog snapshot whenever the product service reports a
// change. Returns nil immediately when Kafka is not configured.
func StartProductEventsConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	c := sc.Config.KafkaConf
	if len(c.Broker) == 0 || c.ProductEventsTopic == "" || c.Group == "" {
		return nil
	}
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.Broker,
		GroupID:     c.Group,
		Topic:       c.ProductEventsTopic,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		MaxWait:     50 * time.Millisecond,
		StartOffset: kafka.LastOffset,
	})
	defer r.Close()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}

		var evt ProductEvent
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			logx.WithContext(ctx).Errorf("bad product event payload: %v", err)
		} else if err := sc.Catalog.Reload(ctx); err != nil {
			logx.WithContext(ctx).Errorw("catalog reload on product event failed",
				logx.Field("err", err), logx.Field("product_id", evt.ProductId))
		}
		_ = r.CommitMessages(ctx, m)
	}
}
