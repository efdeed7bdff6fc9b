package model

// MenuItem 预订菜单目录表 — 对应 menu_items
// 由食堂管理员发布维护，对学生只读；会话期间视为不可变
type MenuItem struct {
	MenuItemID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"menu_item_id"`
	Day        string `gorm:"type:varchar(20);not null"                      json:"day"`
	Deadline   string `gorm:"type:varchar(100);not null;default:''"          json:"deadline"`
	Food       string `gorm:"type:varchar(255);not null"                     json:"food"`
	ImageURL   string `gorm:"type:varchar(500);not null;default:''"          json:"image_url"`
	BaseModel
}

// TableName 指定表名
func (MenuItem) TableName() string { return "menu_items" }
