package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/media/dto"
	"churchhub_backend/internals/features/media/service"
	helper "churchhub_backend/internals/helpers"
)

type MediaShareController struct {
	DB *gorm.DB
}

func NewMediaShareController(db *gorm.DB) *MediaShareController {
	return &MediaShareController{DB: db}
}

// 🟢 GET /midia-share/:share_id
// Unauthenticated. The path is part of the distributed-link contract and
// must not change. ?redirect=true sends the caller straight to the file.
func (ctrl *MediaShareController) GetByShareID(c *fiber.Ctx) error {
	shareID := strings.TrimSpace(c.Params("share_id"))
	if len(shareID) != 12 {
		return helper.JsonError(c, fiber.StatusNotFound, "Media not found")
	}

	item, err := service.FindByShareID(ctrl.DB, shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Media not found")
		}
		log.Printf("[ERROR] share lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch media")
	}

	if c.Query("redirect") == "true" {
		return c.Redirect(item.MediaItemPublicURL, fiber.StatusFound)
	}
	return helper.JsonOK(c, "Media", dto.MediaShareResponse{
		MediaItemTitle:     item.MediaItemTitle,
		MediaItemCategory:  item.MediaItemCategory,
		MediaItemPublicURL: item.MediaItemPublicURL,
	})
}
