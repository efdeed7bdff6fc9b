package dto

// ── 请假模块 DTO ──

// SubmitLeaveRequest 提交请假申请
// 日期为固定格式 dd-MM-yyyy 字符串
type SubmitLeaveRequest struct {
	RoomNo   string `json:"room_no"   binding:"required"`
	Block    string `json:"block"     binding:"required"`
	Reason   string `json:"reason"    binding:"required"`
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date"   binding:"required"`
}

// LeaveRequestResponse 请假申请响应
type LeaveRequestResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RoomNo        string `json:"room_no"`
	Block         string `json:"block"`
	Reason        string `json:"reason"`
	FromDate      string `json:"from_date"`
	ToDate        string `json:"to_date"`
	SubmittedAtMs int64  `json:"submitted_at_ms"`
}

// LeavePassResponse 通行证视图：当前有效通行证 + 历史记录
// 读取时派生，不落库；ActivePass 为空表示当前无有效通行证
type LeavePassResponse struct {
	Institution string                 `json:"institution"`
	ActivePass  *LeaveRequestResponse  `json:"active_pass,omitempty"`
	History     []LeaveRequestResponse `json:"history"`
}
