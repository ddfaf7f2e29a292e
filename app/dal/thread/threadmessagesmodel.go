package thread

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ThreadMessagesModel = (*customThreadMessagesModel)(nil)

type (
	// ThreadMessagesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customThreadMessagesModel.
	ThreadMessagesModel interface {
		threadMessagesModel
		ListByThreadId(ctx context.Context, threadId int64) ([]*ThreadMessages, error)
		DeleteByThreadId(ctx context.Context, threadId int64) error
	}

	customThreadMessagesModel struct {
		*defaultThreadMessagesModel
	}
)

// NewThreadMessagesModel returns a model for the database table.
func NewThreadMessagesModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ThreadMessagesModel {
	return &customThreadMessagesModel{
		defaultThreadMessagesModel: newThreadMessagesModel(conn, c, opts...),
	}
}

func (m *customThreadMessagesModel) ListByThreadId(ctx context.Context, threadId int64) ([]*ThreadMessages, error) {
	query := fmt.Sprintf("select %s from %s where `thread_id` = ? order by `id`", threadMessagesRows, m.table)
	var resp []*ThreadMessages
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, threadId)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customThreadMessagesModel) DeleteByThreadId(ctx context.Context, threadId int64) error {
	query := fmt.Sprintf("delete from %s where `thread_id` = ?", m.table)
	_, err := m.ExecNoCacheCtx(ctx, query, threadId)
	return err
}
