package handler

import (
	"github.com/gin-gonic/gin"

	"stayease/internal/dto"
	"stayease/internal/service"
	"stayease/pkg/response"
)

// MenuHandler 食堂周菜单 HTTP 处理器
type MenuHandler struct {
	menuSvc service.MenuService
}

// NewMenuHandler 创建 MenuHandler
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

// GetWeeklyMenu 查询整周菜单
// GET /api/v1/menu
func (h *MenuHandler) GetWeeklyMenu(c *gin.Context) {
	result, err := h.menuSvc.GetWeeklyMenu(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpsertDayMenu 新建/覆盖某天菜单（宿管/管理员）
// PUT /api/v1/menu
func (h *MenuHandler) UpsertDayMenu(c *gin.Context) {
	var req dto.UpsertFoodMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.menuSvc.UpsertDayMenu(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
