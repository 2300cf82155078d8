package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Join table: which members serve in which ministry. One row per pair.
type MinistryMemberModel struct {
	MinistryMemberID         uuid.UUID `gorm:"column:ministry_member_id;type:uuid;primaryKey" json:"ministry_member_id"`
	MinistryMemberMinistryID uuid.UUID `gorm:"column:ministry_member_ministry_id;type:uuid;not null;uniqueIndex:uq_ministry_members_pair" json:"ministry_member_ministry_id"`
	MinistryMemberMemberID   uuid.UUID `gorm:"column:ministry_member_member_id;type:uuid;not null;uniqueIndex:uq_ministry_members_pair" json:"ministry_member_member_id"`

	MinistryMemberCreatedAt time.Time `gorm:"column:ministry_member_created_at;autoCreateTime" json:"ministry_member_created_at"`
}

func (MinistryMemberModel) TableName() string {
	return "ministry_members"
}

func (m *MinistryMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MinistryMemberID == uuid.Nil {
		m.MinistryMemberID = uuid.New()
	}
	return nil
}
