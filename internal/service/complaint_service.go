package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"stayease/internal/dto"
	"stayease/internal/model"
	"stayease/internal/repository"
)

// ── 投诉模块业务错误 ──

var (
	ErrInvalidCategory       = errors.New("无效的投诉类别")
	ErrComplaintSubmitFailed = errors.New("投诉提交失败")
)

// complaintCategories 合法投诉类别白名单
var complaintCategories = map[string]struct{}{
	"Wi-Fi":       {},
	"Water":       {},
	"Maintenance": {},
	"Electricity": {},
	"Others":      {},
}

// ComplaintService 投诉业务接口
type ComplaintService interface {
	Submit(ctx context.Context, studentID, name string, req *dto.SubmitComplaintRequest) (*dto.ComplaintResponse, error)
	ListMine(ctx context.Context, studentID string) ([]dto.ComplaintResponse, error)
}

type complaintService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewComplaintService 创建 ComplaintService 实例
func NewComplaintService(repo *repository.Repository, logger *zap.Logger) ComplaintService {
	return &complaintService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Submit ──────────────────────

// Submit 提交投诉，初始状态固定为 Pending
func (s *complaintService) Submit(ctx context.Context, studentID, name string, req *dto.SubmitComplaintRequest) (*dto.ComplaintResponse, error) {
	if _, ok := complaintCategories[req.Category]; !ok {
		return nil, ErrInvalidCategory
	}

	complaint := &model.Complaint{
		StudentID:     studentID,
		StudentName:   name,
		Category:      req.Category,
		Description:   req.Description,
		Status:        model.ComplaintStatusPending,
		SubmittedAtMs: s.now().UnixMilli(),
	}

	if err := s.repo.Complaint.Create(ctx, complaint); err != nil {
		s.logger.Error("写入投诉失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, ErrComplaintSubmitFailed
	}

	return toComplaintResponse(complaint), nil
}

// ────────────────────── ListMine ──────────────────────

// ListMine 查询当前学生的投诉记录（提交时间降序）
func (s *complaintService) ListMine(ctx context.Context, studentID string) ([]dto.ComplaintResponse, error) {
	complaints, err := s.repo.Complaint.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询投诉失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		result = append(result, *toComplaintResponse(&complaints[i]))
	}
	return result, nil
}

// ── 内部辅助方法 ──

func toComplaintResponse(c *model.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		ID:            c.ComplaintID,
		Category:      c.Category,
		Description:   c.Description,
		Status:        c.Status,
		SubmittedAtMs: c.SubmittedAtMs,
	}
}
