package mq

import (
	"testing"

	"KasaMarket/app/api/assistant/internal/config"
	"KasaMarket/app/api/assistant/internal/svc"

	"github.com/stretchr/testify/assert"
)

func TestPublishAssistantServedUnconfigured(t *testing.T) {
	sc := &svc.ServiceContext{Config: config.Config{}}

	err := PublishAssistantServed(sc, AssistantServedEvent{
		UserId:     1,
		Intent:     "greeting",
		ProductIds: []string{"1"},
	})
	assert.NoError(t, err)
}
