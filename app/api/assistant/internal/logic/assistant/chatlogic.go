// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"KasaMarket/app/api/assistant/internal/agent"
	"KasaMarket/app/api/assistant/internal/logic/helper"
	"KasaMarket/app/api/assistant/internal/mq"
	"KasaMarket/app/api/assistant/internal/svc"
	"KasaMarket/app/api/assistant/internal/types"
	"KasaMarket/app/common/consts/errno"
	"KasaMarket/app/common/snowflake"
	"KasaMarket/app/common/util"
	"KasaMarket/app/dal/thread"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const maxTitleLen = 60

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, errors.New(int(errno.InvalidParam), "message is required")
	}

	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	result, err := l.svcCtx.Agent.Handle(l.ctx, agent.Req{
		Message:    req.Message,
		Role:       req.Role,
		FamilySize: req.FamilySize,
		Budget:     req.Budget,
	})
	if err != nil {
		return nil, err
	}

	cart := helper.ToCartData(result.Cart)

	threadId := l.persistExchange(userId, req, result.Message, cart)
	l.publishServed(userId, threadId, result, cart)

	return &types.ChatResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		ThreadId:   formatThreadId(threadId),
		Message:    result.Message,
		CartData:   cart,
	}, nil
}

// persistExchange records the user/assistant exchange. Storage failures are
// logged and swallowed: the reply is already computed and must go out.
func (l *ChatLogic) persistExchange(userId int64, req *types.ChatRequest, reply string, cart *types.CartData) int64 {
	threadId := l.resolveThread(userId, req)
	if threadId == 0 {
		return 0
	}

	userMsg := &thread.ThreadMessages{
		Id:       snowflake.Next(),
		ThreadId: threadId,
		Sender:   "user",
		Body:     req.Message,
	}
	if _, err := l.svcCtx.ThreadMessagesModel.Insert(l.ctx, userMsg); err != nil {
		l.Logger.Errorf("persist user message failed: %v", err)
		return threadId
	}

	assistantMsg := &thread.ThreadMessages{
		Id:       snowflake.Next(),
		ThreadId: threadId,
		Sender:   "assistant",
		Body:     reply,
		CartJson: helper.MarshalCart(cart),
	}
	if _, err := l.svcCtx.ThreadMessagesModel.Insert(l.ctx, assistantMsg); err != nil {
		l.Logger.Errorf("persist assistant message failed: %v", err)
	}

	if err := l.svcCtx.ThreadsModel.Touch(l.ctx, threadId); err != nil {
		l.Logger.Errorf("touch thread failed: %v", err)
	}
	return threadId
}

// resolveThread returns the existing thread when the caller owns it, or
// creates a new one titled after the first message.
func (l *ChatLogic) resolveThread(userId int64, req *types.ChatRequest) int64 {
	if req.ThreadId != "" {
		id, err := strconv.ParseInt(req.ThreadId, 10, 64)
		if err != nil {
			l.Logger.Errorf("bad thread id %q: %v", req.ThreadId, err)
			return 0
		}
		rec, err := l.svcCtx.ThreadsModel.FindOne(l.ctx, id)
		if err != nil || rec == nil || rec.UserId != userId {
			l.Logger.Errorf("thread %d not usable for user %d: %v", id, userId, err)
			return 0
		}
		return id
	}

	title := truncateTitle(strings.TrimSpace(req.Message))
	rec := &thread.Threads{
		Id:     snowflake.Next(),
		UserId: userId,
		Title:  title,
	}
	if _, err := l.svcCtx.ThreadsModel.Insert(l.ctx, rec); err != nil {
		l.Logger.Errorf("create thread failed: %v", err)
		return 0
	}
	return rec.Id
}

func (l *ChatLogic) publishServed(userId, threadId int64, result *agent.Result, cart *types.CartData) {
	evt := mq.AssistantServedEvent{
		UserId:   userId,
		ThreadId: threadId,
		Intent:   string(result.Intent),
	}
	if cart != nil {
		for _, p := range cart.Products {
			evt.ProductIds = append(evt.ProductIds, p.Id)
		}
	}
	if err := mq.PublishAssistantServed(l.svcCtx, evt); err != nil {
		l.Logger.Errorf("publish assistant served event failed: %v", err)
	}
}

// truncateTitle caps the title at maxTitleLen bytes without cutting a rune.
func truncateTitle(title string) string {
	if len(title) <= maxTitleLen {
		return title
	}
	cut := maxTitleLen
	for cut > 0 && !utf8.RuneStart(title[cut]) {
		cut--
	}
	return title[:cut]
}

func formatThreadId(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
