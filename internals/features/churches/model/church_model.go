package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChurchModel struct {
	ChurchID      uuid.UUID `gorm:"column:church_id;type:uuid;primaryKey" json:"church_id"`
	ChurchName    string    `gorm:"column:church_name;type:varchar(255);not null" json:"church_name"`
	ChurchSlug    string    `gorm:"column:church_slug;type:varchar(100);not null" json:"church_slug"`
	ChurchEmail   string    `gorm:"column:church_email;type:varchar(255)" json:"church_email"`
	ChurchPhone   string    `gorm:"column:church_phone;type:varchar(30)" json:"church_phone"`
	ChurchAddress string    `gorm:"column:church_address;type:text" json:"church_address"`

	// IANA zone used for "same calendar day" checks on events.
	ChurchTimezone string `gorm:"column:church_timezone;type:varchar(64);not null;default:'America/Sao_Paulo'" json:"church_timezone"`

	ChurchIsActive bool `gorm:"column:church_is_active;not null;default:true" json:"church_is_active"`

	ChurchCreatedAt time.Time      `gorm:"column:church_created_at;autoCreateTime" json:"church_created_at"`
	ChurchUpdatedAt time.Time      `gorm:"column:church_updated_at;autoUpdateTime" json:"church_updated_at"`
	ChurchDeletedAt gorm.DeletedAt `gorm:"column:church_deleted_at;index" json:"church_deleted_at,omitempty"`

	// NOTE: slug uniqueness (case-insensitive) lives in a migration:
	//   CREATE UNIQUE INDEX ux_churches_slug_lower ON churches (LOWER(church_slug));
}

func (ChurchModel) TableName() string {
	return "churches"
}

func (m *ChurchModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChurchID == uuid.Nil {
		m.ChurchID = uuid.New()
	}
	return nil
}
