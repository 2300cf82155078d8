package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/members/model"
)

// 🔹 Create request. Validation rules are shared with the update flow via
// the same tags (pointers on update, same constraints).
type MemberRequest struct {
	MemberFullName  string     `json:"member_full_name" validate:"required,min=2,max=255"`
	MemberEmail     string     `json:"member_email" validate:"omitempty,email"`
	MemberPhone     string     `json:"member_phone" validate:"omitempty,max=30"`
	MemberAddress   string     `json:"member_address"`
	MemberStatus    string     `json:"member_status" validate:"omitempty,oneof=active inactive visitor"`
	MemberBirthDate *time.Time `json:"member_birth_date"`
	MemberCellID    *uuid.UUID `json:"member_cell_id"`
}

type MemberUpdateRequest struct {
	MemberFullName  *string    `json:"member_full_name" validate:"omitempty,min=2,max=255"`
	MemberEmail     *string    `json:"member_email" validate:"omitempty,email"`
	MemberPhone     *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberAddress   *string    `json:"member_address"`
	MemberStatus    *string    `json:"member_status" validate:"omitempty,oneof=active inactive visitor"`
	MemberBirthDate *time.Time `json:"member_birth_date"`
	MemberCellID    *uuid.UUID `json:"member_cell_id"`
	ClearCellID     bool       `json:"clear_cell_id,omitempty"`
}

type MemberResponse struct {
	MemberID        uuid.UUID  `json:"member_id"`
	MemberFullName  string     `json:"member_full_name"`
	MemberEmail     string     `json:"member_email"`
	MemberPhone     string     `json:"member_phone"`
	MemberAddress   string     `json:"member_address"`
	MemberStatus    string     `json:"member_status"`
	MemberBirthDate *time.Time `json:"member_birth_date,omitempty"`
	MemberCellID    *uuid.UUID `json:"member_cell_id,omitempty"`
	MemberCellName  string     `json:"member_cell_name,omitempty"`
	MemberCreatedAt string     `json:"member_created_at"`
}

// 🔹 Birthday listing entry
type MemberBirthdayResponse struct {
	MemberID       uuid.UUID `json:"member_id"`
	MemberFullName string    `json:"member_full_name"`
	BirthDate      time.Time `json:"birth_date"`
	DaysUntil      int       `json:"days_until"`
	Bucket         string    `json:"bucket"`
}

func (r *MemberRequest) ToModel(churchID uuid.UUID) *model.MemberModel {
	status := r.MemberStatus
	if status == "" {
		status = "active"
	}
	return &model.MemberModel{
		MemberChurchID:  churchID,
		MemberFullName:  r.MemberFullName,
		MemberEmail:     r.MemberEmail,
		MemberPhone:     r.MemberPhone,
		MemberAddress:   r.MemberAddress,
		MemberStatus:    status,
		MemberBirthDate: r.MemberBirthDate,
		MemberCellID:    r.MemberCellID,
	}
}

func ToMemberResponse(m *model.MemberModel) *MemberResponse {
	return &MemberResponse{
		MemberID:        m.MemberID,
		MemberFullName:  m.MemberFullName,
		MemberEmail:     m.MemberEmail,
		MemberPhone:     m.MemberPhone,
		MemberAddress:   m.MemberAddress,
		MemberStatus:    m.MemberStatus,
		MemberBirthDate: m.MemberBirthDate,
		MemberCellID:    m.MemberCellID,
		MemberCreatedAt: m.MemberCreatedAt.Format(time.RFC3339),
	}
}

func ToMemberResponseList(models []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToMemberResponse(&models[i]))
	}
	return out
}
