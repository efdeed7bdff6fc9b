package repository

import (
	"context"

	"gorm.io/gorm"

	"stayease/internal/model"
)

// ComplaintRepository 投诉登记数据访问接口
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	ListByStudent(ctx context.Context, studentID string) ([]model.Complaint, error)
}

// complaintRepo ComplaintRepository 的 GORM 实现
type complaintRepo struct {
	db *gorm.DB
}

// NewComplaintRepo 创建 ComplaintRepository 实例
func NewComplaintRepo(db *gorm.DB) ComplaintRepository {
	return &complaintRepo{db: db}
}

func (r *complaintRepo) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Complaint, error) {
	var complaints []model.Complaint
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at_ms DESC").
		Find(&complaints).Error
	return complaints, err
}
