package mq

import (
	"context"
	"encoding/json"
	"time"

	"KasaMarket/app/api/assistant/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishAssistantServed sends an analytics event for an answered chat.
// Uses the shared writer in ServiceContext when available, else creates a
// short-lived writer to publish one message.
func PublishAssistantServed(sc *svc.ServiceContext, evt AssistantServedEvent) error {
	c := sc.Config.KafkaConf
	if len(c.Broker) == 0 || c.AssistantServedTopic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	w := sc.KafkaWriter
	if w == nil {
		ww := &kafka.Writer{
			Addr:                   kafka.TCP(c.Broker...),
			Topic:                  c.AssistantServedTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer ww.Close()
		w = ww
	}
	return w.WriteMessages(context.Background(), kafka.Message{Value: body})
}
