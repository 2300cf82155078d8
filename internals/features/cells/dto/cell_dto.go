// file: internals/features/cells/dto/cell_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/cells/model"
)

// ========================
// Request DTO
// ========================
type CellRequest struct {
	CellName            string     `json:"cell_name" validate:"required,min=2,max=255"`
	CellStatus          string     `json:"cell_status" validate:"omitempty,oneof=active inactive"`
	CellLeaderID        *uuid.UUID `json:"cell_leader_id"`
	CellMeetingWeekday  *int       `json:"cell_meeting_weekday" validate:"omitempty,min=0,max=6"`
	CellMeetingTime     string     `json:"cell_meeting_time" validate:"omitempty,max=10"`
	CellMeetingLocation string     `json:"cell_meeting_location" validate:"omitempty,max=500"`
}

type CellUpdateRequest struct {
	CellName            *string    `json:"cell_name" validate:"omitempty,min=2,max=255"`
	CellStatus          *string    `json:"cell_status" validate:"omitempty,oneof=active inactive"`
	CellLeaderID        *uuid.UUID `json:"cell_leader_id"`
	ClearLeaderID       bool       `json:"clear_leader_id"`
	CellMeetingWeekday  *int       `json:"cell_meeting_weekday" validate:"omitempty,min=0,max=6"`
	CellMeetingTime     *string    `json:"cell_meeting_time" validate:"omitempty,max=10"`
	CellMeetingLocation *string    `json:"cell_meeting_location" validate:"omitempty,max=500"`
}

// ========================
// Response DTO
// ========================
type CellResponse struct {
	CellID              uuid.UUID  `json:"cell_id"`
	CellChurchID        uuid.UUID  `json:"cell_church_id"`
	CellName            string     `json:"cell_name"`
	CellStatus          string     `json:"cell_status"`
	CellLeaderID        *uuid.UUID `json:"cell_leader_id,omitempty"`
	CellLeaderName      string     `json:"cell_leader_name,omitempty"`
	CellMemberCount     int64      `json:"cell_member_count"`
	CellMeetingWeekday  *int       `json:"cell_meeting_weekday,omitempty"`
	CellMeetingTime     string     `json:"cell_meeting_time,omitempty"`
	CellMeetingLocation string     `json:"cell_meeting_location,omitempty"`
	CellCreatedAt       time.Time  `json:"cell_created_at"`
}

func (r CellRequest) ToModel(churchID uuid.UUID) *model.CellModel {
	status := r.CellStatus
	if status == "" {
		status = "active"
	}
	return &model.CellModel{
		CellChurchID:        churchID,
		CellName:            r.CellName,
		CellStatus:          status,
		CellLeaderID:        r.CellLeaderID,
		CellMeetingWeekday:  r.CellMeetingWeekday,
		CellMeetingTime:     r.CellMeetingTime,
		CellMeetingLocation: r.CellMeetingLocation,
	}
}

func ToCellResponse(m *model.CellModel) CellResponse {
	return CellResponse{
		CellID:              m.CellID,
		CellChurchID:        m.CellChurchID,
		CellName:            m.CellName,
		CellStatus:          m.CellStatus,
		CellLeaderID:        m.CellLeaderID,
		CellMeetingWeekday:  m.CellMeetingWeekday,
		CellMeetingTime:     m.CellMeetingTime,
		CellMeetingLocation: m.CellMeetingLocation,
		CellCreatedAt:       m.CellCreatedAt,
	}
}
