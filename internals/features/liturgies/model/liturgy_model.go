package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiturgyModel struct {
	LiturgyID       uuid.UUID `gorm:"column:liturgy_id;type:uuid;primaryKey" json:"liturgy_id"`
	LiturgyChurchID uuid.UUID `gorm:"column:liturgy_church_id;type:uuid;not null;index:idx_liturgies_church_id" json:"liturgy_church_id"`

	LiturgyTitle    string `gorm:"column:liturgy_title;type:varchar(255);not null" json:"liturgy_title"`
	LiturgyMinister string `gorm:"column:liturgy_minister;type:varchar(255)" json:"liturgy_minister,omitempty"`
	LiturgyTheme    string `gorm:"column:liturgy_theme;type:varchar(255)" json:"liturgy_theme,omitempty"`

	// service | celebration | communion | vigil
	LiturgyType string `gorm:"column:liturgy_type;type:varchar(20);not null;default:'service'" json:"liturgy_type"`

	LiturgyScheduledAt time.Time `gorm:"column:liturgy_scheduled_at;not null;index:idx_liturgies_scheduled_at" json:"liturgy_scheduled_at"`

	LiturgyCreatedAt time.Time      `gorm:"column:liturgy_created_at;autoCreateTime" json:"liturgy_created_at"`
	LiturgyUpdatedAt time.Time      `gorm:"column:liturgy_updated_at;autoUpdateTime" json:"liturgy_updated_at"`
	LiturgyDeletedAt gorm.DeletedAt `gorm:"column:liturgy_deleted_at;index" json:"liturgy_deleted_at,omitempty"`
}

func (LiturgyModel) TableName() string {
	return "liturgies"
}

func (m *LiturgyModel) BeforeCreate(tx *gorm.DB) error {
	if m.LiturgyID == uuid.Nil {
		m.LiturgyID = uuid.New()
	}
	return nil
}
