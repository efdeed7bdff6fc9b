package repository

import (
	"context"

	"gorm.io/gorm"

	"stayease/internal/model"
)

// MenuItemRepository 预订菜单目录数据访问接口
type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) error
}

// menuItemRepo MenuItemRepository 的 GORM 实现
type menuItemRepo struct {
	db *gorm.DB
}

// NewMenuItemRepo 创建 MenuItemRepository 实例
func NewMenuItemRepo(db *gorm.DB) MenuItemRepository {
	return &menuItemRepo{db: db}
}

func (r *menuItemRepo) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepo) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List 返回全部目录条目，存储层不保证顺序，按星期排序由 Service 层完成
func (r *menuItemRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepo) Update(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).
		Model(item).
		Where("menu_item_id = ?", item.MenuItemID).
		Updates(map[string]interface{}{
			"day":        item.Day,
			"deadline":   item.Deadline,
			"food":       item.Food,
			"image_url":  item.ImageURL,
			"updated_by": item.UpdatedBy,
		}).Error
}

func (r *menuItemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("menu_item_id = ?", id).
		Delete(&model.MenuItem{}).Error
}
