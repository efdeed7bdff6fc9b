package service

import (
	"go.uber.org/zap"

	"stayease/config"
	"stayease/internal/repository"
	"stayease/pkg/jwt"
	"stayease/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Preorder  PreorderService
	Leave     LeaveService
	Menu      MenuService
	Complaint ComplaintService
	Export    ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Preorder:  NewPreorderService(repo, logger),
		Leave:     NewLeaveService(cfg, repo, logger),
		Menu:      NewMenuService(repo, logger),
		Complaint: NewComplaintService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}
