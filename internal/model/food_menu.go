package model

// FoodMenu 每周食堂菜单表 — 对应 food_menus，每天一条
// Menu 为分号分隔的餐别文本，如 "Breakfast: Idli,Vada; Lunch: Rice"
type FoodMenu struct {
	FoodMenuID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"food_menu_id"`
	Day        string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"day"`
	Menu       string `gorm:"type:text;not null;default:''"                  json:"menu"`
	BaseModel
}

// TableName 指定表名
func (FoodMenu) TableName() string { return "food_menus" }
