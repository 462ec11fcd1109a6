package repo

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gorm"

	"go-dessert-api/internal/domain"
	"go-dessert-api/pkg/utils"
)

// Store 按集合封装文档级操作。软删字段是普通 *time.Time 列，
// 这里不使用 gorm.DeletedAt，查询永远不带隐式 deleted_at IS NULL。
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] { return &Store[T]{db: db} }

// FindAll 返回集合内全部记录，含软删。
func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return items, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &item, nil
}

// FindByField 身份类查找（如按 name 找用户）。field 只接受内部调用方给的列名。
func (s *Store[T]) FindByField(ctx context.Context, field string, value any) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).First(&item, fmt.Sprintf("%s = ?", field), value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by %s: %w", field, err)
	}
	return &item, nil
}

// Insert 写入新记录；ID 为空则生成。时间戳由 autoCreateTime/autoUpdateTime 填。
func (s *Store[T]) Insert(ctx context.Context, rec *T) error {
	ensureID(rec)
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// UpdateByID 部分更新：只改 patch 里出现的列，其余保持原样。
// 返回更新后的记录；id 不存在返回 ErrNotFound。
func (s *Store[T]) UpdateByID(ctx context.Context, id string, patch map[string]any) (*T, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		var model T
		if err := s.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(patch).Error; err != nil {
			return nil, fmt.Errorf("update by id: %w", err)
		}
	}
	return s.FindByID(ctx, id)
}

// DeleteByID 物理删除，返回被删的记录。不可恢复。
func (s *Store[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	item, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var model T
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model).Error; err != nil {
		return nil, fmt.Errorf("delete by id: %w", err)
	}
	return item, nil
}

// ensureID 反射找 ID 字段，为空时生成。模型约定 string 主键。
func ensureID(rec any) {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	f := v.FieldByName("ID")
	if f.IsValid() && f.Kind() == reflect.String && f.CanSet() && strings.TrimSpace(f.String()) == "" {
		f.SetString(utils.NewID())
	}
}
