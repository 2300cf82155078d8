package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/churches/controller"
)

// ChurchPublicRoutes: mounted under /api/public (no auth)
func ChurchPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)

	router.Get("/churches/:slug", ctrl.GetPublicBySlug)
}
