package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/churches/controller"
)

// ChurchAdminRoutes: mounted under /api/a (JWT + admin scope applied upstream)
func ChurchAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)

	church := router.Group("/church")
	church.Get("/", ctrl.GetMyChurch)
	church.Patch("/", ctrl.UpdateMyChurch)
	church.Patch("/site-settings", ctrl.UpdateSiteSettings)
}
