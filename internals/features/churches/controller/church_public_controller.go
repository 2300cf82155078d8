package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/churches/dto"
	"churchhub_backend/internals/features/churches/model"
	"churchhub_backend/internals/features/churches/service"
	helper "churchhub_backend/internals/helpers"
)

// 🟢 GET /api/public/churches/:slug
// Everything the public marketing site needs in one payload.
func (ctrl *ChurchController) GetPublicBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug must not be empty")
	}

	var church model.ChurchModel
	if err := ctrl.DB.
		Where("LOWER(church_slug) = LOWER(?) AND church_is_active = ?", slug, true).
		First(&church).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Church not found")
	}

	resp := dto.ChurchPublicResponse{
		ChurchResponse: *dto.ToChurchResponse(&church),
		GalleryURLs:    []string{},
	}

	var ss model.SiteSettingModel
	err := ctrl.DB.Where("site_setting_church_id = ?", church.ChurchID).First(&ss).Error
	if err == nil {
		resp.SiteTitle = ss.SiteSettingTitle
		resp.SiteDescription = ss.SiteSettingDescription
		resp.SiteLogoURL = ss.SiteSettingLogoURL
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load site settings")
	}

	if urls, err := service.GalleryURLs(ctrl.DB, church.ChurchID); err == nil {
		resp.GalleryURLs = urls
	}

	return helper.JsonOK(c, "Church found", resp)
}
