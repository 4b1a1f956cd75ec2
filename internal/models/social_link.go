package models

// SocialLinkModel stores a site-wide social media link. Not owner-scoped.
type SocialLinkModel struct {
	Base
	Platform string `json:"platform" gorm:"type:varchar(25);not null"`
	Link     string `json:"link"     gorm:"type:varchar(100);not null"`
}

func (SocialLinkModel) TableName() string { return "social_links" }
