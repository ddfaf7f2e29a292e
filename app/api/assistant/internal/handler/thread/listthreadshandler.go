// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package thread

import (
	"net/http"

	"KasaMarket/app/api/assistant/internal/logic/thread"
	"KasaMarket/app/api/assistant/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListThreadsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := thread.NewListThreadsLogic(r.Context(), svcCtx)
		resp, err := l.ListThreads()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
