// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"KasaMarket/app/api/assistant/internal/bootstrap"
	"KasaMarket/app/api/assistant/internal/config"
	"KasaMarket/app/api/assistant/internal/handler"
	"KasaMarket/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/assistant-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	stopKafka := bootstrap.StartKafka(ctx)
	defer stopKafka()
	stopAsynq := bootstrap.StartAsynq(ctx)
	defer stopAsynq()

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
