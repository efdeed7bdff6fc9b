package dto

// ── 投诉模块 DTO ──

// SubmitComplaintRequest 提交投诉
type SubmitComplaintRequest struct {
	Category    string `json:"category"    binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ComplaintResponse 投诉记录响应
type ComplaintResponse struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	SubmittedAtMs int64  `json:"submitted_at_ms"`
}
