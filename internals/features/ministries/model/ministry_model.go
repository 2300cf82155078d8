package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MinistryModel struct {
	MinistryID       uuid.UUID `gorm:"column:ministry_id;type:uuid;primaryKey" json:"ministry_id"`
	MinistryChurchID uuid.UUID `gorm:"column:ministry_church_id;type:uuid;not null;index:idx_ministries_church_id" json:"ministry_church_id"`

	MinistryName  string `gorm:"column:ministry_name;type:varchar(255);not null" json:"ministry_name"`
	MinistryColor string `gorm:"column:ministry_color;type:varchar(20)" json:"ministry_color,omitempty"`

	MinistryLeaderID *uuid.UUID `gorm:"column:ministry_leader_id;type:uuid" json:"ministry_leader_id,omitempty"`

	MinistryCreatedAt time.Time      `gorm:"column:ministry_created_at;autoCreateTime" json:"ministry_created_at"`
	MinistryUpdatedAt time.Time      `gorm:"column:ministry_updated_at;autoUpdateTime" json:"ministry_updated_at"`
	MinistryDeletedAt gorm.DeletedAt `gorm:"column:ministry_deleted_at;index" json:"ministry_deleted_at,omitempty"`
}

func (MinistryModel) TableName() string {
	return "ministries"
}

func (m *MinistryModel) BeforeCreate(tx *gorm.DB) error {
	if m.MinistryID == uuid.Nil {
		m.MinistryID = uuid.New()
	}
	return nil
}
