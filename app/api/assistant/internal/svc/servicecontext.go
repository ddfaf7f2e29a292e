// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"KasaMarket/app/api/assistant/internal/agent"
	"KasaMarket/app/api/assistant/internal/augment"
	"KasaMarket/app/api/assistant/internal/catalog"
	"KasaMarket/app/api/assistant/internal/config"
	"KasaMarket/app/common/middleware"
	"KasaMarket/app/common/snowflake"
	"KasaMarket/app/dal/product"
	"KasaMarket/app/dal/thread"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config         config.Config
	AuthMiddleware rest.Middleware

	ProductsModel       product.ProductsModel
	ThreadsModel        thread.ThreadsModel
	ThreadMessagesModel thread.ThreadMessagesModel

	Catalog *catalog.Store
	Agent   *agent.Agent

	KafkaWriter *kafka.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorw("set snowflake node failed", logx.Field("err", err))
		}
	}

	conn := sqlx.MustNewConn(c.MysqlConf)

	sc := &ServiceContext{
		Config:              c,
		AuthMiddleware:      middleware.NewAuthMiddleware(c.AccessSecret).Handle,
		ProductsModel:       product.NewProductsModel(conn, c.CacheConf),
		ThreadsModel:        thread.NewThreadsModel(conn, c.CacheConf),
		ThreadMessagesModel: thread.NewThreadMessagesModel(conn, c.CacheConf),
	}

	sc.Catalog = catalog.NewStore(sc.ProductsModel)
	if err := sc.Catalog.Reload(context.Background()); err != nil {
		logx.Errorw("initial catalog load failed", logx.Field("err", err))
	}

	var augmenter augment.TextAugmenter
	if c.ChatModel.APIKey != "" && c.ChatModel.Model != "" {
		ark, err := augment.NewArkAugmenter(context.Background(),
			c.ChatModel.BaseUrl, c.ChatModel.APIKey, c.ChatModel.Model,
			time.Duration(c.ChatModel.TimeoutSeconds)*time.Second)
		if err != nil {
			logx.Errorw("init ark augmenter failed", logx.Field("err", err))
		} else {
			augmenter = ark
			logx.Infow("ark augmenter initialized")
		}
	}

	sc.Agent = agent.New(sc.Catalog, augmenter)

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.AssistantServedTopic != "" {
		sc.KafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.AssistantServedTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
	}

	return sc
}
