package thread

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ThreadsModel = (*customThreadsModel)(nil)

type (
	// ThreadsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customThreadsModel.
	ThreadsModel interface {
		threadsModel
		ListByUserId(ctx context.Context, userId int64) ([]*Threads, error)
		Touch(ctx context.Context, id int64) error
	}

	customThreadsModel struct {
		*defaultThreadsModel
	}
)

// NewThreadsModel returns a model for the database table.
func NewThreadsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ThreadsModel {
	return &customThreadsModel{
		defaultThreadsModel: newThreadsModel(conn, c, opts...),
	}
}

func (m *customThreadsModel) ListByUserId(ctx context.Context, userId int64) ([]*Threads, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `updated_at` desc", threadsRows, m.table)
	var resp []*Threads
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, userId)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// Touch bumps updated_at so the thread sorts to the top of the list.
func (m *customThreadsModel) Touch(ctx context.Context, id int64) error {
	threadsIdKey := fmt.Sprintf("%s%v", cacheThreadsIdPrefix, id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("update %s set `updated_at` = now() where `id` = ?", m.table)
		return conn.ExecCtx(ctx, query, id)
	}, threadsIdKey)
	return err
}
