// file: internals/features/ministries/dto/ministry_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/ministries/model"
)

// ========================
// Request DTO
// ========================
type MinistryRequest struct {
	MinistryName     string     `json:"ministry_name" validate:"required,min=2,max=255"`
	MinistryColor    string     `json:"ministry_color" validate:"omitempty,max=20"`
	MinistryLeaderID *uuid.UUID `json:"ministry_leader_id"`
}

type MinistryUpdateRequest struct {
	MinistryName     *string    `json:"ministry_name" validate:"omitempty,min=2,max=255"`
	MinistryColor    *string    `json:"ministry_color" validate:"omitempty,max=20"`
	MinistryLeaderID *uuid.UUID `json:"ministry_leader_id"`
	ClearLeaderID    bool       `json:"clear_leader_id"`
}

type MinistryMemberRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

// ========================
// Response DTO
// ========================
type MinistryResponse struct {
	MinistryID          uuid.UUID  `json:"ministry_id"`
	MinistryChurchID    uuid.UUID  `json:"ministry_church_id"`
	MinistryName        string     `json:"ministry_name"`
	MinistryColor       string     `json:"ministry_color,omitempty"`
	MinistryLeaderID    *uuid.UUID `json:"ministry_leader_id,omitempty"`
	MinistryLeaderName  string     `json:"ministry_leader_name,omitempty"`
	MinistryMemberCount int64      `json:"ministry_member_count"`
	MinistryCreatedAt   time.Time  `json:"ministry_created_at"`
}

type MinistryMemberResponse struct {
	MemberID       uuid.UUID `json:"member_id"`
	MemberFullName string    `json:"member_full_name"`
	MemberStatus   string    `json:"member_status"`
	JoinedAt       time.Time `json:"joined_at"`
}

func (r MinistryRequest) ToModel(churchID uuid.UUID) *model.MinistryModel {
	return &model.MinistryModel{
		MinistryChurchID: churchID,
		MinistryName:     r.MinistryName,
		MinistryColor:    r.MinistryColor,
		MinistryLeaderID: r.MinistryLeaderID,
	}
}

func ToMinistryResponse(m *model.MinistryModel) MinistryResponse {
	return MinistryResponse{
		MinistryID:        m.MinistryID,
		MinistryChurchID:  m.MinistryChurchID,
		MinistryName:      m.MinistryName,
		MinistryColor:     m.MinistryColor,
		MinistryLeaderID:  m.MinistryLeaderID,
		MinistryCreatedAt: m.MinistryCreatedAt,
	}
}
