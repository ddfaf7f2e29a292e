// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package thread

import (
	"context"
	"strconv"
	"time"

	"KasaMarket/app/api/assistant/internal/logic/helper"
	"KasaMarket/app/api/assistant/internal/svc"
	"KasaMarket/app/api/assistant/internal/types"
	"KasaMarket/app/common/consts/errno"
	"KasaMarket/app/common/util"
	threadmodel "KasaMarket/app/dal/thread"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetThreadLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetThreadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetThreadLogic {
	return &GetThreadLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetThreadLogic) GetThread(req *types.GetThreadRequest) (*types.GetThreadResponse, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	rec, err := ownedThread(l.ctx, l.svcCtx, userId, req.Id)
	if err != nil {
		return nil, err
	}

	records, err := l.svcCtx.ThreadMessagesModel.ListByThreadId(l.ctx, rec.Id)
	if err != nil && err != threadmodel.ErrNotFound {
		l.Logger.Error("logic: list thread messages failed: ", err)
		return nil, err
	}

	messages := make([]types.ThreadMessage, 0, len(records))
	for _, msg := range records {
		if msg == nil {
			continue
		}
		messages = append(messages, types.ThreadMessage{
			Sender:    msg.Sender,
			Body:      msg.Body,
			CartData:  helper.UnmarshalCart(msg.CartJson),
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}

	return &types.GetThreadResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Id:         strconv.FormatInt(rec.Id, 10),
		Title:      rec.Title,
		Messages:   messages,
	}, nil
}

// ownedThread loads a thread and enforces that the caller owns it.
func ownedThread(ctx context.Context, svcCtx *svc.ServiceContext, userId int64, rawId string) (*threadmodel.Threads, error) {
	id, err := strconv.ParseInt(rawId, 10, 64)
	if err != nil {
		return nil, errors.New(int(errno.InvalidParam), "invalid thread id")
	}

	rec, err := svcCtx.ThreadsModel.FindOne(ctx, id)
	if err == threadmodel.ErrNotFound || rec == nil {
		return nil, errors.New(int(errno.ThreadNotFound), "thread not found")
	}
	if err != nil {
		return nil, err
	}
	if rec.UserId != userId {
		return nil, errors.New(int(errno.ThreadForbidden), "thread belongs to another user")
	}
	return rec, nil
}
