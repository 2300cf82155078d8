package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProfileModel ties a user to a church with a role and the admin pages
// they may open. One profile per user per church.
type ProfileModel struct {
	ProfileID       uuid.UUID `gorm:"column:profile_id;type:uuid;primaryKey" json:"profile_id"`
	ProfileUserID   uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;uniqueIndex:uq_profiles_user_church" json:"profile_user_id"`
	ProfileChurchID uuid.UUID `gorm:"column:profile_church_id;type:uuid;not null;uniqueIndex:uq_profiles_user_church" json:"profile_church_id"`

	// admin | leader | member
	ProfileRole string `gorm:"column:profile_role;type:varchar(20);not null;default:'member'" json:"profile_role"`

	ProfilePagePermissions pq.StringArray `gorm:"column:profile_page_permissions;type:text[]" json:"profile_page_permissions"`

	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time      `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"profile_deleted_at,omitempty"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (m *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProfileID == uuid.Nil {
		m.ProfileID = uuid.New()
	}
	return nil
}
