package handler

import "stayease/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Preorder  *PreorderHandler
	Leave     *LeaveHandler
	Menu      *MenuHandler
	Complaint *ComplaintHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Preorder:  NewPreorderHandler(svc.Preorder),
		Leave:     NewLeaveHandler(svc.Leave),
		Menu:      NewMenuHandler(svc.Menu),
		Complaint: NewComplaintHandler(svc.Complaint),
		Export:    NewExportHandler(svc.Export),
	}
}
