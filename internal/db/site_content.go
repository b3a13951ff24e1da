package db

import "time"

// SiteContent 保存前台文案的键值对，键为固定的应用级枚举
type SiteContent struct {
	ID        string `gorm:"primaryKey;size:100"`
	Content   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName 自定义表名以保持命名一致。
func (SiteContent) TableName() string {
	return "site_content"
}

const (
	// ContentKeyHeroTitle 表示首屏主标题。
	ContentKeyHeroTitle = "hero_title"
	// ContentKeyHeroSubtitle 表示首屏副标题。
	ContentKeyHeroSubtitle = "hero_subtitle"
	// ContentKeyHeroDescription 表示首屏描述文案。
	ContentKeyHeroDescription = "hero_description"
	// ContentKeyAboutText 表示关于我正文，支持 Markdown。
	ContentKeyAboutText = "about_text"
	// ContentKeyContactHeading 表示联系区标题。
	ContentKeyContactHeading = "contact_heading"
	// ContentKeyContactSubtext 表示联系区说明文案。
	ContentKeyContactSubtext = "contact_subtext"
	// ContentKeyProfileImageURL 表示头像图片链接。
	ContentKeyProfileImageURL = "profile_image_url"
	// ContentKeyLocation 表示所在地。
	ContentKeyLocation = "location"
)
