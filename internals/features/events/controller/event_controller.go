package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/events/dto"
	"churchhub_backend/internals/features/events/model"
	"churchhub_backend/internals/features/events/service"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// 🟢 GET /api/a/events?from=&to=&featured=&q=&page=&per_page=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Events", []dto.EventResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{}).Where("event_church_id = ?", churchID)
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if ts, err := time.Parse(time.RFC3339, from); err == nil {
			q = q.Where("event_starts_at >= ?", ts)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if ts, err := time.Parse(time.RFC3339, to); err == nil {
			q = q.Where("event_starts_at < ?", ts)
		}
	}
	if featured := strings.TrimSpace(c.Query("featured")); featured == "true" {
		q = q.Where("event_is_featured = ?", true)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(event_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_starts_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	loc := service.ChurchLocation(ctrl.DB, churchID)
	now := time.Now()
	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(&events[i],
			service.ClassifyScheduleStatus(events[i].EventStartsAt, now, loc))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Events", resp, &pg)
}

// 🟢 GET /api/a/events/conflicts?date=2026-05-03&exclude_id=
func (ctrl *EventController) GetConflicts(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	loc := service.ChurchLocation(ctrl.DB, churchID)

	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing date (YYYY-MM-DD)")
	}
	day, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (YYYY-MM-DD)")
	}

	var excludeID *uuid.UUID
	if rawID := strings.TrimSpace(c.Query("exclude_id")); rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exclude_id")
		}
		excludeID = &id
	}

	cnt, err := service.CountSameDayConflicts(ctrl.DB, churchID, day, loc, excludeID)
	if err != nil {
		log.Printf("[ERROR] count conflicts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check conflicts")
	}
	return helper.JsonOK(c, "Conflicts", dto.EventConflictResponse{Date: raw, Conflicts: cnt})
}

// 🟢 POST /api/a/events
// Duplicates (same title + exact start) are rejected; same-day conflicts only
// warn in the response.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if req.EventEndsAt != nil && !req.EventEndsAt.After(req.EventStartsAt) {
		return helper.JsonValidationError(c, map[string][]string{
			"event_ends_at": {"must be after event_starts_at"},
		})
	}

	if err := service.GuardDuplicate(ctrl.DB, churchID, req.EventTitle, req.EventStartsAt, nil); err != nil {
		if errors.Is(err, service.ErrDuplicateEvent) {
			return helper.JsonError(c, fiber.StatusConflict, "An event with the same title and start time already exists")
		}
		log.Printf("[ERROR] duplicate guard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save event")
	}

	loc := service.ChurchLocation(ctrl.DB, churchID)
	conflicts, err := service.CountSameDayConflicts(ctrl.DB, churchID, req.EventStartsAt, loc, nil)
	if err != nil {
		log.Printf("[WARN] conflict check on create: %v", err)
		conflicts = 0
	}

	m := req.ToModel(churchID)
	m.EventID = uuid.New()

	values := map[string]any{
		"event_id":          m.EventID,
		"event_church_id":   m.EventChurchID,
		"event_title":       m.EventTitle,
		"event_description": m.EventDescription,
		"event_location":    m.EventLocation,
		"event_starts_at":   m.EventStartsAt,
		"event_ends_at":     m.EventEndsAt,
		"event_is_featured": m.EventIsFeatured,
		"event_created_at":  time.Now().UTC(),
		"event_updated_at":  time.Now().UTC(),
	}

	// schema may lag the app in some deployments: write only what exists
	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "events", values)
	if err := ctrl.DB.Model(&model.EventModel{}).Create(kept).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save event")
	}

	var created model.EventModel
	if err := ctrl.DB.Where("event_id = ?", m.EventID).First(&created).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}

	resp := dto.ToEventResponse(&created, service.ClassifyScheduleStatus(created.EventStartsAt, time.Now(), loc))
	warnings := []string{}
	if conflicts > 0 {
		warnings = append(warnings, fmt.Sprintf("There are %d other event(s) on the same day", conflicts))
	}
	if len(dropped) > 0 {
		warnings = append(warnings, "Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "))
	}
	if len(warnings) > 0 {
		return helper.JsonPartial(c, "Event saved", strings.Join(warnings, "; "), resp)
	}
	return helper.JsonCreated(c, "Event saved", resp)
}

// 🟡 PATCH /api/a/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var m model.EventModel
	if err := ctrl.DB.
		Where("event_id = ? AND event_church_id = ?", eventID, churchID).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	title := m.EventTitle
	if req.EventTitle != nil {
		title = *req.EventTitle
	}
	startsAt := m.EventStartsAt
	if req.EventStartsAt != nil {
		startsAt = *req.EventStartsAt
	}
	if err := service.GuardDuplicate(ctrl.DB, churchID, title, startsAt, &eventID); err != nil {
		if errors.Is(err, service.ErrDuplicateEvent) {
			return helper.JsonError(c, fiber.StatusConflict, "An event with the same title and start time already exists")
		}
		log.Printf("[ERROR] duplicate guard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	values := map[string]any{}
	if req.EventTitle != nil {
		values["event_title"] = *req.EventTitle
	}
	if req.EventDescription != nil {
		values["event_description"] = *req.EventDescription
	}
	if req.EventLocation != nil {
		values["event_location"] = *req.EventLocation
	}
	if req.EventStartsAt != nil {
		values["event_starts_at"] = *req.EventStartsAt
	}
	if req.ClearEndsAt {
		values["event_ends_at"] = nil
	} else if req.EventEndsAt != nil {
		values["event_ends_at"] = *req.EventEndsAt
	}
	if req.EventIsFeatured != nil {
		values["event_is_featured"] = *req.EventIsFeatured
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	kept, dropped := helper.StripUnknownColumns(ctrl.DB, "events", values)
	if len(kept) > 0 {
		if err := ctrl.DB.Model(&m).Updates(kept).Error; err != nil {
			log.Printf("[ERROR] update event: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
		}
	}
	if err := ctrl.DB.Where("event_id = ?", eventID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}

	loc := service.ChurchLocation(ctrl.DB, churchID)
	resp := dto.ToEventResponse(&m, service.ClassifyScheduleStatus(m.EventStartsAt, time.Now(), loc))
	if len(dropped) > 0 {
		return helper.JsonPartial(c, "Event updated",
			"Some fields were not stored (pending schema migration): "+strings.Join(dropped, ", "), resp)
	}
	return helper.JsonUpdated(c, "Event updated", resp)
}

// 🔴 DELETE /api/a/events/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res := ctrl.DB.
		Where("event_id = ? AND event_church_id = ?", eventID, churchID).
		Delete(&model.EventModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete event: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", nil)
}
