package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/media/controller"
)

// MediaAdminRoutes: mounted under /api/a
func MediaAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMediaController(db)

	media := router.Group("/media")
	media.Get("/", ctrl.GetMediaItems)
	media.Post("/", ctrl.UploadMedia)
	media.Patch("/:id", ctrl.UpdateMedia)
	media.Delete("/:id", ctrl.DeleteMedia)
}
