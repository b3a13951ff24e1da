package db

import "time"

// AdminSession 保存登录成功后签发的不透明令牌
// 表中不记录过期时间，令牌在被签发后长期有效

type AdminSession struct {
	Token     string `gorm:"primaryKey;size:64"`
	CreatedAt time.Time
}

// TableName 自定义表名以保持命名一致。
func (AdminSession) TableName() string {
	return "admin_sessions"
}
