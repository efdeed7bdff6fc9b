package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayease/internal/model"
)

// FoodMenuRepository 每周食堂菜单数据访问接口
type FoodMenuRepository interface {
	List(ctx context.Context) ([]model.FoodMenu, error)
	GetByDay(ctx context.Context, day string) (*model.FoodMenu, error)
	Upsert(ctx context.Context, menu *model.FoodMenu) error
}

// foodMenuRepo FoodMenuRepository 的 GORM 实现
type foodMenuRepo struct {
	db *gorm.DB
}

// NewFoodMenuRepo 创建 FoodMenuRepository 实例
func NewFoodMenuRepo(db *gorm.DB) FoodMenuRepository {
	return &foodMenuRepo{db: db}
}

func (r *foodMenuRepo) List(ctx context.Context) ([]model.FoodMenu, error) {
	var menus []model.FoodMenu
	err := r.db.WithContext(ctx).Find(&menus).Error
	return menus, err
}

func (r *foodMenuRepo) GetByDay(ctx context.Context, day string) (*model.FoodMenu, error) {
	var menu model.FoodMenu
	err := r.db.WithContext(ctx).
		Where("day = ?", day).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Upsert 按 day 唯一键覆盖写入某天菜单
func (r *foodMenuRepo) Upsert(ctx context.Context, menu *model.FoodMenu) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"menu", "updated_at", "updated_by"}),
		}).
		Create(menu).Error
}
