package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/prayers/dto"
	"churchhub_backend/internals/features/prayers/model"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type PrayerRequestController struct {
	DB *gorm.DB
}

func NewPrayerRequestController(db *gorm.DB) *PrayerRequestController {
	return &PrayerRequestController{DB: db}
}

// 🟢 GET /api/a/prayer-requests?status=&public=&q=&page=&per_page=
func (ctrl *PrayerRequestController) GetPrayerRequests(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Prayer requests", []dto.PrayerRequestResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PrayerRequestModel{}).
		Where("prayer_request_church_id = ?", churchID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("prayer_request_status = ?", status)
	}
	if pub := strings.TrimSpace(c.Query("public")); pub == "true" {
		q = q.Where("prayer_request_is_public = ?", true)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(prayer_request_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count prayer requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count prayer requests")
	}

	var rows []model.PrayerRequestModel
	if err := q.Order("prayer_request_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list prayer requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer requests")
	}

	resp := make([]dto.PrayerRequestResponse, len(rows))
	for i := range rows {
		resp[i] = dto.ToPrayerRequestResponse(&rows[i])
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Prayer requests", resp, &pg)
}

// 🟢 POST /api/a/prayer-requests
func (ctrl *PrayerRequestController) CreatePrayerRequest(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PrayerRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel(churchID)
	m.PrayerRequestID = uuid.New()

	values := map[string]any{
		"prayer_request_id":          m.PrayerRequestID,
		"prayer_request_church_id":   m.PrayerRequestChurchID,
		"prayer_request_title":       m.PrayerRequestTitle,
		"prayer_request_description": m.PrayerRequestDescription,
		"prayer_request_status":      m.PrayerRequestStatus,
		"prayer_request_is_public":   m.PrayerRequestIsPublic,
		"prayer_request_member_id":   m.PrayerRequestMemberID,
		"prayer_request_created_at":  time.Now().UTC(),
		"prayer_request_updated_at":  time.Now().UTC(),
	}

	// schema may lag the app in some deployments: write only what exists
	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "prayer_requests", values)
	if err := ctrl.DB.Model(&model.PrayerRequestModel{}).Create(kept).Error; err != nil {
		log.Printf("[ERROR] create prayer request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save prayer request")
	}

	var created model.PrayerRequestModel
	if err := ctrl.DB.Where("prayer_request_id = ?", m.PrayerRequestID).First(&created).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload prayer request")
	}
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Prayer request saved",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToPrayerRequestResponse(&created))
	}
	return helper.JsonCreated(c, "Prayer request saved", dto.ToPrayerRequestResponse(&created))
}

// 🟡 PATCH /api/a/prayer-requests/:id
func (ctrl *PrayerRequestController) UpdatePrayerRequest(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	prayerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	var m model.PrayerRequestModel
	if err := ctrl.DB.
		Where("prayer_request_id = ? AND prayer_request_church_id = ?", prayerID, churchID).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}

	var req dto.PrayerRequestUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.PrayerRequestTitle != nil {
		values["prayer_request_title"] = *req.PrayerRequestTitle
	}
	if req.PrayerRequestDescription != nil {
		values["prayer_request_description"] = *req.PrayerRequestDescription
	}
	if req.PrayerRequestStatus != nil {
		values["prayer_request_status"] = *req.PrayerRequestStatus
	}
	if req.PrayerRequestIsPublic != nil {
		values["prayer_request_is_public"] = *req.PrayerRequestIsPublic
	}
	if req.ClearMemberID {
		values["prayer_request_member_id"] = nil
	} else if req.PrayerRequestMemberID != nil {
		values["prayer_request_member_id"] = *req.PrayerRequestMemberID
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "prayer_requests", values)
	if len(kept) > 0 {
		if err := ctrl.DB.Model(&m).Updates(kept).Error; err != nil {
			log.Printf("[ERROR] update prayer request: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update prayer request")
		}
	}
	if err := ctrl.DB.Where("prayer_request_id = ?", prayerID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload prayer request")
	}
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Prayer request updated",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "),
			dto.ToPrayerRequestResponse(&m))
	}
	return helper.JsonUpdated(c, "Prayer request updated", dto.ToPrayerRequestResponse(&m))
}

// 🔴 DELETE /api/a/prayer-requests/:id
func (ctrl *PrayerRequestController) DeletePrayerRequest(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	prayerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	res := ctrl.DB.
		Where("prayer_request_id = ? AND prayer_request_church_id = ?", prayerID, churchID).
		Delete(&model.PrayerRequestModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete prayer request: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete prayer request")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}
	return helper.JsonDeleted(c, "Prayer request deleted", nil)
}
