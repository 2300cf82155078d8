// file: internals/features/liturgies/dto/liturgy_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/liturgies/model"
)

// ========================
// Request DTO
// ========================
type LiturgyRequest struct {
	LiturgyTitle       string    `json:"liturgy_title" validate:"required,min=2,max=255"`
	LiturgyMinister    string    `json:"liturgy_minister" validate:"omitempty,max=255"`
	LiturgyTheme       string    `json:"liturgy_theme" validate:"omitempty,max=255"`
	LiturgyType        string    `json:"liturgy_type" validate:"omitempty,oneof=service celebration communion vigil"`
	LiturgyScheduledAt time.Time `json:"liturgy_scheduled_at" validate:"required"`
}

type LiturgyUpdateRequest struct {
	LiturgyTitle       *string    `json:"liturgy_title" validate:"omitempty,min=2,max=255"`
	LiturgyMinister    *string    `json:"liturgy_minister" validate:"omitempty,max=255"`
	LiturgyTheme       *string    `json:"liturgy_theme" validate:"omitempty,max=255"`
	LiturgyType        *string    `json:"liturgy_type" validate:"omitempty,oneof=service celebration communion vigil"`
	LiturgyScheduledAt *time.Time `json:"liturgy_scheduled_at"`
}

type LiturgyItemRequest struct {
	LiturgyItemTitle           string `json:"liturgy_item_title" validate:"required,min=1,max=255"`
	LiturgyItemNotes           string `json:"liturgy_item_notes" validate:"omitempty,max=5000"`
	LiturgyItemDurationMinutes int    `json:"liturgy_item_duration_minutes" validate:"omitempty,min=0,max=600"`
}

type LiturgyItemUpdateRequest struct {
	LiturgyItemTitle           *string `json:"liturgy_item_title" validate:"omitempty,min=1,max=255"`
	LiturgyItemNotes           *string `json:"liturgy_item_notes" validate:"omitempty,max=5000"`
	LiturgyItemDurationMinutes *int    `json:"liturgy_item_duration_minutes" validate:"omitempty,min=0,max=600"`
}

// direction of a reorder request
type LiturgyItemMoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// ========================
// Response DTO
// ========================
type LiturgyResponse struct {
	LiturgyID             uuid.UUID `json:"liturgy_id"`
	LiturgyChurchID       uuid.UUID `json:"liturgy_church_id"`
	LiturgyTitle          string    `json:"liturgy_title"`
	LiturgyMinister       string    `json:"liturgy_minister,omitempty"`
	LiturgyTheme          string    `json:"liturgy_theme,omitempty"`
	LiturgyType           string    `json:"liturgy_type"`
	LiturgyScheduledAt    time.Time `json:"liturgy_scheduled_at"`
	LiturgyScheduleStatus string    `json:"liturgy_schedule_status,omitempty"`
	LiturgyCreatedAt      time.Time `json:"liturgy_created_at"`
}

func (r LiturgyRequest) ToModel(churchID uuid.UUID) *model.LiturgyModel {
	typ := r.LiturgyType
	if typ == "" {
		typ = "service"
	}
	return &model.LiturgyModel{
		LiturgyChurchID:    churchID,
		LiturgyTitle:       r.LiturgyTitle,
		LiturgyMinister:    r.LiturgyMinister,
		LiturgyTheme:       r.LiturgyTheme,
		LiturgyType:        typ,
		LiturgyScheduledAt: r.LiturgyScheduledAt,
	}
}

func ToLiturgyResponse(m *model.LiturgyModel, scheduleStatus string) LiturgyResponse {
	return LiturgyResponse{
		LiturgyID:             m.LiturgyID,
		LiturgyChurchID:       m.LiturgyChurchID,
		LiturgyTitle:          m.LiturgyTitle,
		LiturgyMinister:       m.LiturgyMinister,
		LiturgyTheme:          m.LiturgyTheme,
		LiturgyType:           m.LiturgyType,
		LiturgyScheduledAt:    m.LiturgyScheduledAt,
		LiturgyScheduleStatus: scheduleStatus,
		LiturgyCreatedAt:      m.LiturgyCreatedAt,
	}
}
