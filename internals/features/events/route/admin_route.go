package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/events/controller"
)

// EventAdminRoutes: mounted under /api/a
func EventAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := router.Group("/events")
	events.Get("/", ctrl.GetEvents)
	events.Get("/conflicts", ctrl.GetConflicts)
	events.Post("/", ctrl.CreateEvent)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
