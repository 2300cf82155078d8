package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID       uuid.UUID `gorm:"column:member_id;type:uuid;primaryKey" json:"member_id"`
	MemberChurchID uuid.UUID `gorm:"column:member_church_id;type:uuid;not null;index:idx_members_church_id" json:"member_church_id"`

	MemberFullName string `gorm:"column:member_full_name;type:varchar(255);not null" json:"member_full_name"`
	MemberEmail    string `gorm:"column:member_email;type:varchar(255)" json:"member_email"`
	MemberPhone    string `gorm:"column:member_phone;type:varchar(30)" json:"member_phone"`
	MemberAddress  string `gorm:"column:member_address;type:text" json:"member_address"`

	// active | inactive | visitor
	MemberStatus string `gorm:"column:member_status;type:varchar(20);not null;default:'active'" json:"member_status"`

	MemberBirthDate *time.Time `gorm:"column:member_birth_date;type:date" json:"member_birth_date,omitempty"`

	// optional cell membership; nulled when the cell is removed
	MemberCellID *uuid.UUID `gorm:"column:member_cell_id;type:uuid;index:idx_members_cell_id" json:"member_cell_id,omitempty"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time      `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
