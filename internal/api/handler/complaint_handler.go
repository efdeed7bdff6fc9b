package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stayease/internal/dto"
	"stayease/internal/service"
	"stayease/pkg/response"
)

// ComplaintHandler 投诉模块 HTTP 处理器
type ComplaintHandler struct {
	complaintSvc service.ComplaintService
}

// NewComplaintHandler 创建 ComplaintHandler
func NewComplaintHandler(complaintSvc service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintSvc: complaintSvc}
}

// Submit 提交投诉
// POST /api/v1/complaints
func (h *ComplaintHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	name, ok := MustGetName(c)
	if !ok {
		return
	}

	var req dto.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.complaintSvc.Submit(c.Request.Context(), userID, name, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			response.BadRequest(c, 14001, "无效的投诉类别")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListMine 查询当前学生的投诉记录
// GET /api/v1/complaints
func (h *ComplaintHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.complaintSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
