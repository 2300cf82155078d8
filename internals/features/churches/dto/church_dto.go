package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/churches/model"
)

// 🔹 Onboarding: any authenticated user may open a church and becomes its admin
type ChurchCreateRequest struct {
	ChurchName     string `json:"church_name" validate:"required,min=2,max=255"`
	ChurchEmail    string `json:"church_email" validate:"omitempty,email"`
	ChurchPhone    string `json:"church_phone" validate:"omitempty,max=30"`
	ChurchAddress  string `json:"church_address"`
	ChurchTimezone string `json:"church_timezone" validate:"omitempty,max=64"`
}

// 🔹 Admin-facing update (partial)
type ChurchUpdateRequest struct {
	ChurchName     *string `json:"church_name" validate:"omitempty,min=2,max=255"`
	ChurchEmail    *string `json:"church_email" validate:"omitempty,email"`
	ChurchPhone    *string `json:"church_phone" validate:"omitempty,max=30"`
	ChurchAddress  *string `json:"church_address"`
	ChurchTimezone *string `json:"church_timezone" validate:"omitempty,max=64"`
}

type SiteSettingUpdateRequest struct {
	SiteSettingTitle       *string `json:"site_setting_title" validate:"omitempty,max=255"`
	SiteSettingDescription *string `json:"site_setting_description"`
	SiteSettingLogoURL     *string `json:"site_setting_logo_url" validate:"omitempty,url"`
}

type ChurchResponse struct {
	ChurchID        uuid.UUID `json:"church_id"`
	ChurchName      string    `json:"church_name"`
	ChurchSlug      string    `json:"church_slug"`
	ChurchEmail     string    `json:"church_email"`
	ChurchPhone     string    `json:"church_phone"`
	ChurchAddress   string    `json:"church_address"`
	ChurchTimezone  string    `json:"church_timezone"`
	ChurchIsActive  bool      `json:"church_is_active"`
	ChurchCreatedAt string    `json:"church_created_at"`
}

// 🔹 Public site payload: church profile + site settings + gallery
type ChurchPublicResponse struct {
	ChurchResponse
	SiteTitle       string   `json:"site_title"`
	SiteDescription string   `json:"site_description"`
	SiteLogoURL     string   `json:"site_logo_url"`
	GalleryURLs     []string `json:"gallery_urls"`
}

func ToChurchResponse(m *model.ChurchModel) *ChurchResponse {
	return &ChurchResponse{
		ChurchID:        m.ChurchID,
		ChurchName:      m.ChurchName,
		ChurchSlug:      m.ChurchSlug,
		ChurchEmail:     m.ChurchEmail,
		ChurchPhone:     m.ChurchPhone,
		ChurchAddress:   m.ChurchAddress,
		ChurchTimezone:  m.ChurchTimezone,
		ChurchIsActive:  m.ChurchIsActive,
		ChurchCreatedAt: m.ChurchCreatedAt.Format(time.RFC3339),
	}
}
