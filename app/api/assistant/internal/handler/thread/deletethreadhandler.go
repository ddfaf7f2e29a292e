// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package thread

import (
	"net/http"

	"KasaMarket/app/api/assistant/internal/logic/thread"
	"KasaMarket/app/api/assistant/internal/svc"
	"KasaMarket/app/api/assistant/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteThreadHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteThreadRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := thread.NewDeleteThreadLogic(r.Context(), svcCtx)
		resp, err := l.DeleteThread(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
