package service

import (
	"context"
	"reflect"
	"time"

	"go.uber.org/zap"

	"go-dessert-api/internal/repo"
)

// Lifecycle 对单个集合统一实现软删/恢复/彻底删除/更新的状态机：
//
//	Active --SoftDelete--> SoftDeleted --Restore--> Active
//	Active|SoftDeleted --Purge--> Gone（终态，之后全部 NotFound）
//
// load→mutate→save 之间没有事务保护，并发下是 last-writer-wins。
type Lifecycle[T any] struct {
	store *repo.Store[T]
	name  string // 集合名，只用于日志
	log   *zap.Logger
}

func NewLifecycle[T any](store *repo.Store[T], name string, log *zap.Logger) *Lifecycle[T] {
	return &Lifecycle[T]{store: store, name: name, log: log}
}

// SoftDelete 打软删标记。重复调用只是刷新时间戳。
func (l *Lifecycle[T]) SoftDelete(ctx context.Context, id string) (*T, error) {
	now := time.Now()
	rec, err := l.store.UpdateByID(ctx, id, map[string]any{"deleted_at": now})
	if err != nil {
		return nil, err
	}
	l.log.Info("record soft deleted", zap.String("collection", l.name), zap.String("id", id))
	return rec, nil
}

// Restore 清掉软删标记。记录本来就是活跃的也照常执行，状态不变。
func (l *Lifecycle[T]) Restore(ctx context.Context, id string) (*T, error) {
	rec, err := l.store.UpdateByID(ctx, id, map[string]any{"deleted_at": nil})
	if err != nil {
		return nil, err
	}
	l.log.Info("record restored", zap.String("collection", l.name), zap.String("id", id))
	return rec, nil
}

// Purge 物理删除，不可恢复。
func (l *Lifecycle[T]) Purge(ctx context.Context, id string) (*T, error) {
	rec, err := l.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.log.Info("record purged", zap.String("collection", l.name), zap.String("id", id))
	return rec, nil
}

// Update 按 truthy 规则合并：零值入参（空串/false/0/nil）跳过，不落库。
// 调用方因此无法区分“没传”和“显式清空”，这是沿用的既定行为。
func (l *Lifecycle[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	patch := pruneZero(fields)
	return l.store.UpdateByID(ctx, id, patch)
}

// ListAll 返回集合全部记录，软删的也在内。空列表不是错误。
func (l *Lifecycle[T]) ListAll(ctx context.Context) ([]T, error) {
	items, err := l.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func pruneZero(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if rv := reflect.ValueOf(v); rv.IsZero() {
			continue
		}
		out[k] = v
	}
	return out
}
