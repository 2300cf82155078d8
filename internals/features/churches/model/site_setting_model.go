package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteSettingModel is the per-church blob feeding the public marketing
// site: hero texts, logo, and the image gallery list.
type SiteSettingModel struct {
	SiteSettingID       uuid.UUID `gorm:"column:site_setting_id;type:uuid;primaryKey" json:"site_setting_id"`
	SiteSettingChurchID uuid.UUID `gorm:"column:site_setting_church_id;type:uuid;not null;uniqueIndex:ux_site_settings_church" json:"site_setting_church_id"`

	SiteSettingTitle       string `gorm:"column:site_setting_title;type:varchar(255)" json:"site_setting_title"`
	SiteSettingDescription string `gorm:"column:site_setting_description;type:text" json:"site_setting_description"`
	SiteSettingLogoURL     string `gorm:"column:site_setting_logo_url;type:text" json:"site_setting_logo_url"`

	// JSON array of public image URLs shown in the site gallery.
	SiteSettingGalleryURLs datatypes.JSON `gorm:"column:site_setting_gallery_urls;type:jsonb" json:"site_setting_gallery_urls"`

	SiteSettingCreatedAt time.Time `gorm:"column:site_setting_created_at;autoCreateTime" json:"site_setting_created_at"`
	SiteSettingUpdatedAt time.Time `gorm:"column:site_setting_updated_at;autoUpdateTime" json:"site_setting_updated_at"`
}

func (SiteSettingModel) TableName() string {
	return "site_settings"
}

func (m *SiteSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.SiteSettingID == uuid.Nil {
		m.SiteSettingID = uuid.New()
	}
	return nil
}
