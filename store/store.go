package store

import (
	"context"

	"github.com/afumu/corpus/internal/model"
	"github.com/afumu/corpus/store/types"
)

// Store 定义了审计日志的访问接口。
type Store interface {
	// SaveRequest 追加一条请求记录，ID、哈希与时间为空时自动补全。
	SaveRequest(ctx context.Context, rec *model.AuditRecord) error
	// ListRequests 按时间倒序返回请求记录。
	ListRequests(ctx context.Context, query types.AuditQuery) ([]*model.AuditRecord, error)
	// CountRequests 返回记录总数。
	CountRequests(ctx context.Context) (int, error)

	Close() error
}
