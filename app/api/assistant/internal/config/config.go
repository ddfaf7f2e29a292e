package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	RedisConf redis.RedisConf
	CacheConf cache.CacheConf

	KafkaConf KafkaConf

	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf
	// cron spec for the periodic catalog reload, e.g. "@every 10m"
	CatalogReloadSpec string

	ChatModel ModelConf

	AccessSecret  string
	SnowflakeNode int64

	LogConf logx.LogConf
}

type KafkaConf struct {
	Broker               []string
	Group                string
	ProductEventsTopic   string
	AssistantServedTopic string
}

type AsynqRedisConf struct {
	Addr string
}

type AsynqServerConf struct {
	Concurrency int
	Queues      map[string]int
}

type ModelConf struct {
	BaseUrl        string
	APIKey         string
	Model          string
	TimeoutSeconds int
}
