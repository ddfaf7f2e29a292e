package bootstrap

import (
	"github.com/hibiken/asynq"

	"KasaMarket/app/api/assistant/internal/mq"
	"KasaMarket/app/api/assistant/internal/svc"
)

// StartAsynq runs the background task server plus a scheduler that enqueues
// the periodic catalog reload. Returns a stop func.
func StartAsynq(sc *svc.ServiceContext) func() {
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		addr = sc.Config.RedisConf.Host
	}
	redisOpt := asynq.RedisClientOpt{Addr: addr}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: sc.Config.AsynqServerConf.Concurrency,
		Queues:      sc.Config.AsynqServerConf.Queues,
	})
	go func() {
		if err := srv.Run(mq.NewAsynqMux(sc)); err != nil {
			panic(err)
		}
	}()

	spec := sc.Config.CatalogReloadSpec
	if spec == "" {
		spec = "@every 10m"
	}
	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register(spec, asynq.NewTask(mq.TaskCatalogReload, nil)); err != nil {
		panic(err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			panic(err)
		}
	}()

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}
}
