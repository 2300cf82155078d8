// file: internals/features/events/dto/event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/events/model"
)

// ========================
// Request DTO
// ========================
type EventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,min=2,max=255"`
	EventDescription string     `json:"event_description" validate:"omitempty,max=5000"`
	EventLocation    string     `json:"event_location" validate:"omitempty,max=255"`
	EventStartsAt    time.Time  `json:"event_starts_at" validate:"required"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
	EventIsFeatured  bool       `json:"event_is_featured"`
}

type EventUpdateRequest struct {
	EventTitle       *string    `json:"event_title" validate:"omitempty,min=2,max=255"`
	EventDescription *string    `json:"event_description" validate:"omitempty,max=5000"`
	EventLocation    *string    `json:"event_location" validate:"omitempty,max=255"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
	ClearEndsAt      bool       `json:"clear_ends_at"`
	EventIsFeatured  *bool      `json:"event_is_featured"`
}

// ========================
// Response DTO
// ========================
type EventResponse struct {
	EventID             uuid.UUID  `json:"event_id"`
	EventChurchID       uuid.UUID  `json:"event_church_id"`
	EventTitle          string     `json:"event_title"`
	EventDescription    string     `json:"event_description,omitempty"`
	EventLocation       string     `json:"event_location,omitempty"`
	EventStartsAt       time.Time  `json:"event_starts_at"`
	EventEndsAt         *time.Time `json:"event_ends_at,omitempty"`
	EventIsFeatured     bool       `json:"event_is_featured"`
	EventScheduleStatus string     `json:"event_schedule_status,omitempty"`
	EventCreatedAt      time.Time  `json:"event_created_at"`
}

type EventConflictResponse struct {
	Date      string `json:"date"`
	Conflicts int64  `json:"conflicts"`
}

func (r EventRequest) ToModel(churchID uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventChurchID:    churchID,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventStartsAt:    r.EventStartsAt,
		EventEndsAt:      r.EventEndsAt,
		EventIsFeatured:  r.EventIsFeatured,
	}
}

func ToEventResponse(m *model.EventModel, scheduleStatus string) EventResponse {
	return EventResponse{
		EventID:             m.EventID,
		EventChurchID:       m.EventChurchID,
		EventTitle:          m.EventTitle,
		EventDescription:    m.EventDescription,
		EventLocation:       m.EventLocation,
		EventStartsAt:       m.EventStartsAt,
		EventEndsAt:         m.EventEndsAt,
		EventIsFeatured:     m.EventIsFeatured,
		EventScheduleStatus: scheduleStatus,
		EventCreatedAt:      m.EventCreatedAt,
	}
}
