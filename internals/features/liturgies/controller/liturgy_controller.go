package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventService "churchhub_backend/internals/features/events/service"
	"churchhub_backend/internals/features/liturgies/dto"
	"churchhub_backend/internals/features/liturgies/model"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type LiturgyController struct {
	DB *gorm.DB
}

func NewLiturgyController(db *gorm.DB) *LiturgyController {
	return &LiturgyController{DB: db}
}

// 🟢 GET /api/a/liturgies?type=&q=&page=&per_page=
func (ctrl *LiturgyController) GetLiturgies(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Liturgies", []dto.LiturgyResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.LiturgyModel{}).Where("liturgy_church_id = ?", churchID)
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("liturgy_type = ?", typ)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(liturgy_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count liturgies: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count liturgies")
	}

	var liturgies []model.LiturgyModel
	if err := q.Order("liturgy_scheduled_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&liturgies).Error; err != nil {
		log.Printf("[ERROR] list liturgies: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch liturgies")
	}

	loc := eventService.ChurchLocation(ctrl.DB, churchID)
	now := time.Now()
	resp := make([]dto.LiturgyResponse, len(liturgies))
	for i := range liturgies {
		resp[i] = dto.ToLiturgyResponse(&liturgies[i],
			eventService.ClassifyScheduleStatus(liturgies[i].LiturgyScheduledAt, now, loc))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Liturgies", resp, &pg)
}

// 🟢 POST /api/a/liturgies
func (ctrl *LiturgyController) CreateLiturgy(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.LiturgyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel(churchID)
	m.LiturgyID = uuid.New()

	values := map[string]any{
		"liturgy_id":           m.LiturgyID,
		"liturgy_church_id":    m.LiturgyChurchID,
		"liturgy_title":        m.LiturgyTitle,
		"liturgy_minister":     m.LiturgyMinister,
		"liturgy_theme":        m.LiturgyTheme,
		"liturgy_type":         m.LiturgyType,
		"liturgy_scheduled_at": m.LiturgyScheduledAt,
		"liturgy_created_at":   time.Now().UTC(),
		"liturgy_updated_at":   time.Now().UTC(),
	}

	// schema may lag the app in some deployments: write only what exists
	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "liturgies", values)
	if err := ctrl.DB.Model(&model.LiturgyModel{}).Create(kept).Error; err != nil {
		log.Printf("[ERROR] create liturgy: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save liturgy")
	}

	var created model.LiturgyModel
	if err := ctrl.DB.Where("liturgy_id = ?", m.LiturgyID).First(&created).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload liturgy")
	}

	loc := eventService.ChurchLocation(ctrl.DB, churchID)
	resp := dto.ToLiturgyResponse(&created, eventService.ClassifyScheduleStatus(created.LiturgyScheduledAt, time.Now(), loc))
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Liturgy saved",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "), resp)
	}
	return helper.JsonCreated(c, "Liturgy saved", resp)
}

// 🟡 PATCH /api/a/liturgies/:id
func (ctrl *LiturgyController) UpdateLiturgy(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	liturgyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid liturgy id")
	}

	var m model.LiturgyModel
	if err := ctrl.DB.
		Where("liturgy_id = ? AND liturgy_church_id = ?", liturgyID, churchID).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Liturgy not found")
	}

	var req dto.LiturgyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.LiturgyTitle != nil {
		values["liturgy_title"] = *req.LiturgyTitle
	}
	if req.LiturgyMinister != nil {
		values["liturgy_minister"] = *req.LiturgyMinister
	}
	if req.LiturgyTheme != nil {
		values["liturgy_theme"] = *req.LiturgyTheme
	}
	if req.LiturgyType != nil {
		values["liturgy_type"] = *req.LiturgyType
	}
	if req.LiturgyScheduledAt != nil {
		values["liturgy_scheduled_at"] = *req.LiturgyScheduledAt
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "liturgies", values)
	if len(kept) > 0 {
		if err := ctrl.DB.Model(&m).Updates(kept).Error; err != nil {
			log.Printf("[ERROR] update liturgy: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update liturgy")
		}
	}
	if err := ctrl.DB.Where("liturgy_id = ?", liturgyID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload liturgy")
	}

	loc := eventService.ChurchLocation(ctrl.DB, churchID)
	resp := dto.ToLiturgyResponse(&m, eventService.ClassifyScheduleStatus(m.LiturgyScheduledAt, time.Now(), loc))
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Liturgy updated",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "), resp)
	}
	return helper.JsonUpdated(c, "Liturgy updated", resp)
}

// 🔴 DELETE /api/a/liturgies/:id
// The program items go with it in the same transaction.
func (ctrl *LiturgyController) DeleteLiturgy(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	liturgyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid liturgy id")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("liturgy_id = ? AND liturgy_church_id = ?", liturgyID, churchID).
			Delete(&model.LiturgyModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.
			Where("liturgy_item_liturgy_id = ?", liturgyID).
			Delete(&model.LiturgyItemModel{}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Liturgy not found")
		}
		log.Printf("[ERROR] delete liturgy: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete liturgy")
	}
	return helper.JsonDeleted(c, "Liturgy deleted", nil)
}
