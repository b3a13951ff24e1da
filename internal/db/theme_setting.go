package db

import "time"

// ThemeSettingID 是主题单例记录的固定主键。
const ThemeSettingID = "default"

// ThemeSetting 保存全站主题配置，表中始终只有一行（主键固定为 default）
type ThemeSetting struct {
	ID              string  `gorm:"primaryKey;size:36"`
	AccentColor     string  `gorm:"size:7"`
	AccentIntensity float64 `gorm:"default:1"`
	UpdatedAt       time.Time
}

// TableName 自定义表名以保持命名一致。
func (ThemeSetting) TableName() string {
	return "theme_settings"
}
