package mq

import (
	"context"

	"KasaMarket/app/api/assistant/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCatalogReload, newCatalogReloadHandler(sc))
	return mux
}

// newCatalogReloadHandler refreshes the snapshot periodically as a safety
// net for missed product events.
func newCatalogReloadHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		if err := sc.Catalog.Reload(ctx); err != nil {
			logx.WithContext(ctx).Errorw("periodic catalog reload failed", logx.Field("err", err))
			return err
		}
		return nil
	}
}
