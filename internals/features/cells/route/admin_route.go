package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/cells/controller"
)

// CellAdminRoutes: mounted under /api/a
func CellAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCellController(db)

	cells := router.Group("/cells")
	cells.Get("/", ctrl.GetCells)
	cells.Get("/available-leaders", ctrl.GetAvailableLeaders)
	cells.Post("/", ctrl.CreateCell)
	cells.Patch("/:id", ctrl.UpdateCell)
	cells.Delete("/:id", ctrl.DeleteCell)
}
