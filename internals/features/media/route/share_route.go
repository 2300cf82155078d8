package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/media/controller"
)

// MediaShareRoutes: mounted at the app root, outside /api, because the
// path is baked into links already in circulation.
func MediaShareRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMediaShareController(db)
	app.Get("/midia-share/:share_id", ctrl.GetByShareID)
}
