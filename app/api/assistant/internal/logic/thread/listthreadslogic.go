// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package thread

import (
	"context"
	"strconv"
	"time"

	"KasaMarket/app/api/assistant/internal/svc"
	"KasaMarket/app/api/assistant/internal/types"
	"KasaMarket/app/common/consts/errno"
	"KasaMarket/app/common/util"
	threadmodel "KasaMarket/app/dal/thread"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListThreadsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListThreadsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListThreadsLogic {
	return &ListThreadsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListThreadsLogic) ListThreads() (*types.ListThreadsResponse, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	records, err := l.svcCtx.ThreadsModel.ListByUserId(l.ctx, userId)
	if err != nil && err != threadmodel.ErrNotFound {
		l.Logger.Error("logic: list threads failed: ", err)
		return nil, err
	}

	threads := make([]types.ThreadSummary, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		threads = append(threads, types.ThreadSummary{
			Id:        strconv.FormatInt(rec.Id, 10),
			Title:     rec.Title,
			UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
		})
	}

	return &types.ListThreadsResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Threads:    threads,
	}, nil
}
