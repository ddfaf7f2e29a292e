// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package thread

import (
	"context"

	"KasaMarket/app/api/assistant/internal/svc"
	"KasaMarket/app/api/assistant/internal/types"
	"KasaMarket/app/common/consts/errno"
	"KasaMarket/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteThreadLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteThreadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteThreadLogic {
	return &DeleteThreadLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteThreadLogic) DeleteThread(req *types.DeleteThreadRequest) (*types.DeleteThreadResponse, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	rec, err := ownedThread(l.ctx, l.svcCtx, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if err := l.svcCtx.ThreadMessagesModel.DeleteByThreadId(l.ctx, rec.Id); err != nil {
		l.Logger.Error("logic: delete thread messages failed: ", err)
		return nil, err
	}
	if err := l.svcCtx.ThreadsModel.Delete(l.ctx, rec.Id); err != nil {
		l.Logger.Error("logic: delete thread failed: ", err)
		return nil, err
	}

	return &types.DeleteThreadResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
	}, nil
}
