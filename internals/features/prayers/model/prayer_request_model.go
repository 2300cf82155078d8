package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrayerRequestModel struct {
	PrayerRequestID       uuid.UUID `gorm:"column:prayer_request_id;type:uuid;primaryKey" json:"prayer_request_id"`
	PrayerRequestChurchID uuid.UUID `gorm:"column:prayer_request_church_id;type:uuid;not null;index:idx_prayer_requests_church_id" json:"prayer_request_church_id"`

	PrayerRequestTitle       string `gorm:"column:prayer_request_title;type:varchar(255);not null" json:"prayer_request_title"`
	PrayerRequestDescription string `gorm:"column:prayer_request_description;type:text" json:"prayer_request_description,omitempty"`

	// open | in_progress | answered
	PrayerRequestStatus string `gorm:"column:prayer_request_status;type:varchar(20);not null;default:'open'" json:"prayer_request_status"`

	PrayerRequestIsPublic bool `gorm:"column:prayer_request_is_public;not null;default:false" json:"prayer_request_is_public"`

	// who asked, optional
	PrayerRequestMemberID *uuid.UUID `gorm:"column:prayer_request_member_id;type:uuid" json:"prayer_request_member_id,omitempty"`

	PrayerRequestCreatedAt time.Time      `gorm:"column:prayer_request_created_at;autoCreateTime" json:"prayer_request_created_at"`
	PrayerRequestUpdatedAt time.Time      `gorm:"column:prayer_request_updated_at;autoUpdateTime" json:"prayer_request_updated_at"`
	PrayerRequestDeletedAt gorm.DeletedAt `gorm:"column:prayer_request_deleted_at;index" json:"prayer_request_deleted_at,omitempty"`
}

func (PrayerRequestModel) TableName() string {
	return "prayer_requests"
}

func (m *PrayerRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.PrayerRequestID == uuid.Nil {
		m.PrayerRequestID = uuid.New()
	}
	return nil
}
