package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CellModel struct {
	CellID       uuid.UUID `gorm:"column:cell_id;type:uuid;primaryKey" json:"cell_id"`
	CellChurchID uuid.UUID `gorm:"column:cell_church_id;type:uuid;not null;index:idx_cells_church_id" json:"cell_church_id"`

	CellName string `gorm:"column:cell_name;type:varchar(255);not null" json:"cell_name"`

	// active | inactive
	CellStatus string `gorm:"column:cell_status;type:varchar(20);not null;default:'active'" json:"cell_status"`

	// must reference an active member; a member leads at most one cell
	CellLeaderID *uuid.UUID `gorm:"column:cell_leader_id;type:uuid;index:idx_cells_leader_id" json:"cell_leader_id,omitempty"`

	CellMeetingWeekday  *int   `gorm:"column:cell_meeting_weekday" json:"cell_meeting_weekday,omitempty"` // 0=Sunday..6
	CellMeetingTime     string `gorm:"column:cell_meeting_time;type:varchar(10)" json:"cell_meeting_time,omitempty"`
	CellMeetingLocation string `gorm:"column:cell_meeting_location;type:text" json:"cell_meeting_location,omitempty"`

	CellCreatedAt time.Time      `gorm:"column:cell_created_at;autoCreateTime" json:"cell_created_at"`
	CellUpdatedAt time.Time      `gorm:"column:cell_updated_at;autoUpdateTime" json:"cell_updated_at"`
	CellDeletedAt gorm.DeletedAt `gorm:"column:cell_deleted_at;index" json:"cell_deleted_at,omitempty"`
}

func (CellModel) TableName() string {
	return "cells"
}

func (m *CellModel) BeforeCreate(tx *gorm.DB) error {
	if m.CellID == uuid.Nil {
		m.CellID = uuid.New()
	}
	return nil
}
