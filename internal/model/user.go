package model

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	StudentNo    string `gorm:"type:varchar(20);not null"                      json:"student_no"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	RoomNo       string `gorm:"type:varchar(20);not null;default:''"           json:"room_no"`
	Block        string `gorm:"type:varchar(20);not null;default:''"           json:"block"`
	Role         string `gorm:"type:varchar(20);not null;default:'student'"    json:"role"` // student | warden | admin
	VersionedModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
