// file: internals/features/prayers/dto/prayer_request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/prayers/model"
)

type PrayerRequestRequest struct {
	PrayerRequestTitle       string     `json:"prayer_request_title" validate:"required,min=2,max=255"`
	PrayerRequestDescription string     `json:"prayer_request_description" validate:"omitempty,max=5000"`
	PrayerRequestStatus      string     `json:"prayer_request_status" validate:"omitempty,oneof=open in_progress answered"`
	PrayerRequestIsPublic    bool       `json:"prayer_request_is_public"`
	PrayerRequestMemberID    *uuid.UUID `json:"prayer_request_member_id"`
}

type PrayerRequestUpdateRequest struct {
	PrayerRequestTitle       *string    `json:"prayer_request_title" validate:"omitempty,min=2,max=255"`
	PrayerRequestDescription *string    `json:"prayer_request_description" validate:"omitempty,max=5000"`
	PrayerRequestStatus      *string    `json:"prayer_request_status" validate:"omitempty,oneof=open in_progress answered"`
	PrayerRequestIsPublic    *bool      `json:"prayer_request_is_public"`
	PrayerRequestMemberID    *uuid.UUID `json:"prayer_request_member_id"`
	ClearMemberID            bool       `json:"clear_member_id"`
}

type PrayerRequestResponse struct {
	PrayerRequestID          uuid.UUID  `json:"prayer_request_id"`
	PrayerRequestChurchID    uuid.UUID  `json:"prayer_request_church_id"`
	PrayerRequestTitle       string     `json:"prayer_request_title"`
	PrayerRequestDescription string     `json:"prayer_request_description,omitempty"`
	PrayerRequestStatus      string     `json:"prayer_request_status"`
	PrayerRequestIsPublic    bool       `json:"prayer_request_is_public"`
	PrayerRequestMemberID    *uuid.UUID `json:"prayer_request_member_id,omitempty"`
	PrayerRequestCreatedAt   time.Time  `json:"prayer_request_created_at"`
}

func (r PrayerRequestRequest) ToModel(churchID uuid.UUID) *model.PrayerRequestModel {
	status := r.PrayerRequestStatus
	if status == "" {
		status = "open"
	}
	return &model.PrayerRequestModel{
		PrayerRequestChurchID:    churchID,
		PrayerRequestTitle:       r.PrayerRequestTitle,
		PrayerRequestDescription: r.PrayerRequestDescription,
		PrayerRequestStatus:      status,
		PrayerRequestIsPublic:    r.PrayerRequestIsPublic,
		PrayerRequestMemberID:    r.PrayerRequestMemberID,
	}
}

func ToPrayerRequestResponse(m *model.PrayerRequestModel) PrayerRequestResponse {
	return PrayerRequestResponse{
		PrayerRequestID:          m.PrayerRequestID,
		PrayerRequestChurchID:    m.PrayerRequestChurchID,
		PrayerRequestTitle:       m.PrayerRequestTitle,
		PrayerRequestDescription: m.PrayerRequestDescription,
		PrayerRequestStatus:      m.PrayerRequestStatus,
		PrayerRequestIsPublic:    m.PrayerRequestIsPublic,
		PrayerRequestMemberID:    m.PrayerRequestMemberID,
		PrayerRequestCreatedAt:   m.PrayerRequestCreatedAt,
	}
}
