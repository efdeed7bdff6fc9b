package dto

// ── 食堂周菜单模块 DTO ──

// MealEntry 菜单中的一个餐别（保持原文出现顺序）
type MealEntry struct {
	MealType string `json:"meal_type"`
	Items    string `json:"items"`
}

// DayMenuResponse 某一天的菜单响应
type DayMenuResponse struct {
	ID    string      `json:"id"`
	Day   string      `json:"day"`
	Meals []MealEntry `json:"meals"`
}

// UpsertFoodMenuRequest 新建/覆盖某天菜单（管理员）
type UpsertFoodMenuRequest struct {
	Day  string `json:"day"  binding:"required"`
	Menu string `json:"menu" binding:"required"`
}
