package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/constants"
	"churchhub_backend/internals/features/churches/dto"
	"churchhub_backend/internals/features/churches/model"
	userModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type ChurchController struct {
	DB *gorm.DB
}

func NewChurchController(db *gorm.DB) *ChurchController {
	return &ChurchController{DB: db}
}

// 🟢 POST /api/u/churches
// Onboarding: provisions the church with a unique slug derived from its
// name and makes the caller its admin. The caller's tenant cache entry is
// dropped so the new membership takes effect immediately.
func (ctrl *ChurchController) CreateChurch(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChurchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	slug, err := helper.EnsureUniqueSlugCI(
		c.Context(), ctrl.DB, "churches", "church_slug",
		helper.Slugify(req.ChurchName, 100), nil, 100)
	if err != nil {
		log.Printf("[ERROR] church slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create church")
	}

	timezone := req.ChurchTimezone
	if timezone == "" {
		timezone = "America/Sao_Paulo"
	}

	church := model.ChurchModel{
		ChurchName:     req.ChurchName,
		ChurchSlug:     slug,
		ChurchEmail:    req.ChurchEmail,
		ChurchPhone:    req.ChurchPhone,
		ChurchAddress:  req.ChurchAddress,
		ChurchTimezone: timezone,
		ChurchIsActive: true,
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&church).Error; err != nil {
			return err
		}
		profile := userModel.ProfileModel{
			ProfileUserID:   userID,
			ProfileChurchID: church.ChurchID,
			ProfileRole:     constants.RoleAdmin,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Printf("[ERROR] create church: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create church")
	}

	helperAuth.InvalidateTenant(userID)
	return helper.JsonCreated(c, "Church created", dto.ToChurchResponse(&church))
}

// 🟢 GET /api/a/church
func (ctrl *ChurchController) GetMyChurch(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var church model.ChurchModel
	if err := ctrl.DB.Where("church_id = ?", churchID).First(&church).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Church not found")
	}
	return helper.JsonOK(c, "Church found", dto.ToChurchResponse(&church))
}

// 🟡 PATCH /api/a/church
func (ctrl *ChurchController) UpdateMyChurch(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var church model.ChurchModel
	if err := ctrl.DB.Where("church_id = ?", churchID).First(&church).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Church not found")
	}

	var req dto.ChurchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	updates := map[string]interface{}{}
	if req.ChurchName != nil {
		updates["church_name"] = *req.ChurchName
	}
	if req.ChurchEmail != nil {
		updates["church_email"] = *req.ChurchEmail
	}
	if req.ChurchPhone != nil {
		updates["church_phone"] = *req.ChurchPhone
	}
	if req.ChurchAddress != nil {
		updates["church_address"] = *req.ChurchAddress
	}
	if req.ChurchTimezone != nil {
		updates["church_timezone"] = *req.ChurchTimezone
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&church).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update church: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update church")
	}

	if err := ctrl.DB.Where("church_id = ?", churchID).First(&church).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload church")
	}
	return helper.JsonUpdated(c, "Church updated", dto.ToChurchResponse(&church))
}

// 🟡 PATCH /api/a/church/site-settings
func (ctrl *ChurchController) UpdateSiteSettings(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SiteSettingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var ss model.SiteSettingModel
	err = ctrl.DB.Where("site_setting_church_id = ?", churchID).First(&ss).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ss = model.SiteSettingModel{SiteSettingChurchID: churchID}
		if err := ctrl.DB.Create(&ss).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create site settings")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load site settings")
	}

	updates := map[string]interface{}{}
	if req.SiteSettingTitle != nil {
		updates["site_setting_title"] = *req.SiteSettingTitle
	}
	if req.SiteSettingDescription != nil {
		updates["site_setting_description"] = *req.SiteSettingDescription
	}
	if req.SiteSettingLogoURL != nil {
		updates["site_setting_logo_url"] = *req.SiteSettingLogoURL
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&ss).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update site settings")
	}
	return helper.JsonUpdated(c, "Site settings updated", nil)
}
