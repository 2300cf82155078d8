package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaItemModel struct {
	MediaItemID       uuid.UUID `gorm:"column:media_item_id;type:uuid;primaryKey" json:"media_item_id"`
	MediaItemChurchID uuid.UUID `gorm:"column:media_item_church_id;type:uuid;not null;index:idx_media_items_church_id" json:"media_item_church_id"`

	MediaItemTitle string `gorm:"column:media_item_title;type:varchar(255);not null" json:"media_item_title"`

	// imagens | videos | documentos | audios
	MediaItemCategory string `gorm:"column:media_item_category;type:varchar(20);not null" json:"media_item_category"`

	MediaItemObjectKey   string `gorm:"column:media_item_object_key;type:text;not null" json:"media_item_object_key"`
	MediaItemPublicURL   string `gorm:"column:media_item_public_url;type:text;not null" json:"media_item_public_url"`
	MediaItemThumbURL    string `gorm:"column:media_item_thumb_url;type:text" json:"media_item_thumb_url,omitempty"`
	MediaItemContentType string `gorm:"column:media_item_content_type;type:varchar(100)" json:"media_item_content_type,omitempty"`
	MediaItemSizeBytes   int64  `gorm:"column:media_item_size_bytes;not null;default:0" json:"media_item_size_bytes"`

	MediaItemIsPublic bool `gorm:"column:media_item_is_public;not null;default:false" json:"media_item_is_public"`

	// issued once at upload, never rewritten
	MediaItemShareID string `gorm:"column:media_item_share_id;type:varchar(12);not null;uniqueIndex:uq_media_items_share_id" json:"media_item_share_id"`

	MediaItemCreatedAt time.Time      `gorm:"column:media_item_created_at;autoCreateTime" json:"media_item_created_at"`
	MediaItemUpdatedAt time.Time      `gorm:"column:media_item_updated_at;autoUpdateTime" json:"media_item_updated_at"`
	MediaItemDeletedAt gorm.DeletedAt `gorm:"column:media_item_deleted_at;index" json:"media_item_deleted_at,omitempty"`
}

func (MediaItemModel) TableName() string {
	return "media_items"
}

func (m *MediaItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.MediaItemID == uuid.Nil {
		m.MediaItemID = uuid.New()
	}
	return nil
}
