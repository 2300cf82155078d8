package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/liturgies/dto"
	"churchhub_backend/internals/features/liturgies/model"
	"churchhub_backend/internals/features/liturgies/service"
	helper "churchhub_backend/internals/helpers"
)

type LiturgyItemController struct {
	DB *gorm.DB
}

func NewLiturgyItemController(db *gorm.DB) *LiturgyItemController {
	return &LiturgyItemController{DB: db}
}

// 🟢 GET /api/a/liturgies/:id/items
func (ctrl *LiturgyItemController) GetItems(c *fiber.Ctx) error {
	churchID, liturgyID, err := ctrl.parseIDs(c)
	if err != nil {
		return err
	}

	items, err := service.ListItems(ctrl.DB, churchID, liturgyID)
	if err != nil {
		return itemServiceError(c, err, "Failed to fetch liturgy items")
	}
	return helper.JsonList(c, "Liturgy items", items, nil)
}

// 🟢 POST /api/a/liturgies/:id/items
// New items land at the end of the program.
func (ctrl *LiturgyItemController) AddItem(c *fiber.Ctx) error {
	churchID, liturgyID, err := ctrl.parseIDs(c)
	if err != nil {
		return err
	}

	var req dto.LiturgyItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	item := &model.LiturgyItemModel{
		LiturgyItemTitle:           req.LiturgyItemTitle,
		LiturgyItemNotes:           req.LiturgyItemNotes,
		LiturgyItemDurationMinutes: req.LiturgyItemDurationMinutes,
	}
	if err := service.AppendItem(ctrl.DB, churchID, liturgyID, item); err != nil {
		return itemServiceError(c, err, "Failed to add liturgy item")
	}
	return helper.JsonCreated(c, "Liturgy item added", item)
}

// 🟡 PATCH /api/a/liturgies/:id/items/:item_id
func (ctrl *LiturgyItemController) UpdateItem(c *fiber.Ctx) error {
	churchID, liturgyID, err := ctrl.parseIDs(c)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}
	if err := ctrl.requireLiturgy(c, churchID, liturgyID); err != nil {
		return err
	}

	var item model.LiturgyItemModel
	if err := ctrl.DB.
		Where("liturgy_item_id = ? AND liturgy_item_liturgy_id = ?", itemID, liturgyID).
		First(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Liturgy item not found")
	}

	var req dto.LiturgyItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.LiturgyItemTitle != nil {
		values["liturgy_item_title"] = *req.LiturgyItemTitle
	}
	if req.LiturgyItemNotes != nil {
		values["liturgy_item_notes"] = *req.LiturgyItemNotes
	}
	if req.LiturgyItemDurationMinutes != nil {
		values["liturgy_item_duration_minutes"] = *req.LiturgyItemDurationMinutes
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&item).Updates(values).Error; err != nil {
		log.Printf("[ERROR] update liturgy item: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update liturgy item")
	}
	if err := ctrl.DB.Where("liturgy_item_id = ?", itemID).First(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload liturgy item")
	}
	return helper.JsonUpdated(c, "Liturgy item updated", item)
}

// 🟡 POST /api/a/liturgies/:id/items/:item_id/move
// Body: {"direction": "up" | "down"}. Returns the reordered program.
func (ctrl *LiturgyItemController) MoveItem(c *fiber.Ctx) error {
	churchID, liturgyID, err := ctrl.parseIDs(c)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	var req dto.LiturgyItemMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	direction := -1
	if req.Direction == "down" {
		direction = +1
	}
	if err := service.MoveItem(ctrl.DB, churchID, liturgyID, itemID, direction); err != nil {
		if errors.Is(err, service.ErrAlreadyAtEdge) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Item is already at that position")
		}
		return itemServiceError(c, err, "Failed to move liturgy item")
	}

	items, err := service.ListItems(ctrl.DB, churchID, liturgyID)
	if err != nil {
		return itemServiceError(c, err, "Failed to fetch liturgy items")
	}
	return helper.JsonUpdated(c, "Liturgy item moved", items)
}

// 🔴 DELETE /api/a/liturgies/:id/items/:item_id
func (ctrl *LiturgyItemController) RemoveItem(c *fiber.Ctx) error {
	churchID, liturgyID, err := ctrl.parseIDs(c)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	if err := service.RemoveItem(ctrl.DB, churchID, liturgyID, itemID); err != nil {
		return itemServiceError(c, err, "Failed to remove liturgy item")
	}
	return helper.JsonDeleted(c, "Liturgy item removed", nil)
}

func (ctrl *LiturgyItemController) parseIDs(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	liturgyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid liturgy id")
	}
	return churchID, liturgyID, nil
}

func (ctrl *LiturgyItemController) requireLiturgy(c *fiber.Ctx, churchID, liturgyID uuid.UUID) error {
	var cnt int64
	if err := ctrl.DB.Model(&model.LiturgyModel{}).
		Where("liturgy_id = ? AND liturgy_church_id = ?", liturgyID, churchID).
		Count(&cnt).Error; err != nil {
		log.Printf("[ERROR] find liturgy: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch liturgy")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Liturgy not found")
	}
	return nil
}

func itemServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrLiturgyNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Liturgy not found")
	case errors.Is(err, service.ErrLiturgyItemNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Liturgy item not found")
	default:
		log.Printf("[ERROR] liturgy items: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
