package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ordered program entry of a liturgy. Positions are contiguous from 1.
type LiturgyItemModel struct {
	LiturgyItemID        uuid.UUID `gorm:"column:liturgy_item_id;type:uuid;primaryKey" json:"liturgy_item_id"`
	LiturgyItemLiturgyID uuid.UUID `gorm:"column:liturgy_item_liturgy_id;type:uuid;not null;index:idx_liturgy_items_liturgy_id" json:"liturgy_item_liturgy_id"`

	LiturgyItemTitle           string `gorm:"column:liturgy_item_title;type:varchar(255);not null" json:"liturgy_item_title"`
	LiturgyItemNotes           string `gorm:"column:liturgy_item_notes;type:text" json:"liturgy_item_notes,omitempty"`
	LiturgyItemDurationMinutes int    `gorm:"column:liturgy_item_duration_minutes;not null;default:0" json:"liturgy_item_duration_minutes"`

	LiturgyItemPosition int `gorm:"column:liturgy_item_position;not null" json:"liturgy_item_position"`

	LiturgyItemCreatedAt time.Time `gorm:"column:liturgy_item_created_at;autoCreateTime" json:"liturgy_item_created_at"`
	LiturgyItemUpdatedAt time.Time `gorm:"column:liturgy_item_updated_at;autoUpdateTime" json:"liturgy_item_updated_at"`
}

func (LiturgyItemModel) TableName() string {
	return "liturgy_items"
}

func (m *LiturgyItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.LiturgyItemID == uuid.Nil {
		m.LiturgyItemID = uuid.New()
	}
	return nil
}
