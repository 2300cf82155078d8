package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/prayers/controller"
)

// PrayerRequestAdminRoutes: mounted under /api/a
func PrayerRequestAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrayerRequestController(db)

	prayers := router.Group("/prayer-requests")
	prayers.Get("/", ctrl.GetPrayerRequests)
	prayers.Post("/", ctrl.CreatePrayerRequest)
	prayers.Patch("/:id", ctrl.UpdatePrayerRequest)
	prayers.Delete("/:id", ctrl.DeletePrayerRequest)
}
