package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/churches/controller"
)

// ChurchUserRoutes: mounted under /api/u
func ChurchUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)
	router.Post("/churches", ctrl.CreateChurch)
}
