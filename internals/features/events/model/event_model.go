package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID       uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventChurchID uuid.UUID `gorm:"column:event_church_id;type:uuid;not null;index:idx_events_church_id" json:"event_church_id"`

	EventTitle       string `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string `gorm:"column:event_description;type:text" json:"event_description,omitempty"`
	EventLocation    string `gorm:"column:event_location;type:varchar(255)" json:"event_location,omitempty"`

	EventStartsAt time.Time  `gorm:"column:event_starts_at;not null;index:idx_events_starts_at" json:"event_starts_at"`
	EventEndsAt   *time.Time `gorm:"column:event_ends_at" json:"event_ends_at,omitempty"`

	// dedicated column, not a marker hidden in the description
	EventIsFeatured bool `gorm:"column:event_is_featured;not null;default:false" json:"event_is_featured"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
