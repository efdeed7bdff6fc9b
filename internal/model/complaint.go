package model

// ── 投诉状态 ──

const (
	ComplaintStatusPending  = "Pending"
	ComplaintStatusResolved = "Resolved"
)

// Complaint 投诉登记表 — 对应 complaints
type Complaint struct {
	ComplaintID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"complaint_id"`
	StudentID     string `gorm:"type:uuid;not null;index"                       json:"student_id"`
	StudentName   string `gorm:"type:varchar(100);not null"                     json:"student_name"`
	Category      string `gorm:"type:varchar(50);not null"                      json:"category"` // Wi-Fi | Water | Maintenance | Electricity | Others
	Description   string `gorm:"type:text;not null"                             json:"description"`
	Status        string `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	SubmittedAtMs int64  `gorm:"not null"                                       json:"submitted_at_ms"`
}

// TableName 指定表名
func (Complaint) TableName() string { return "complaints" }
