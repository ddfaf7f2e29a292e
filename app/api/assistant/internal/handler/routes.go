// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	assistant "KasaMarket/app/api/assistant/internal/handler/assistant"
	thread "KasaMarket/app/api/assistant/internal/handler/thread"
	"KasaMarket/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/chat",
					Handler: assistant.ChatHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/threads",
					Handler: thread.ListThreadsHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/threads/:id",
					Handler: thread.GetThreadHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/threads/:id",
					Handler: thread.DeleteThreadHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/v1/assistant"),
	)
}
