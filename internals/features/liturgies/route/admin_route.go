package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/liturgies/controller"
)

// LiturgyAdminRoutes: mounted under /api/a
func LiturgyAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLiturgyController(db)
	itemCtrl := controller.NewLiturgyItemController(db)

	liturgies := router.Group("/liturgies")
	liturgies.Get("/", ctrl.GetLiturgies)
	liturgies.Post("/", ctrl.CreateLiturgy)
	liturgies.Patch("/:id", ctrl.UpdateLiturgy)
	liturgies.Delete("/:id", ctrl.DeleteLiturgy)

	liturgies.Get("/:id/items", itemCtrl.GetItems)
	liturgies.Post("/:id/items", itemCtrl.AddItem)
	liturgies.Patch("/:id/items/:item_id", itemCtrl.UpdateItem)
	liturgies.Post("/:id/items/:item_id/move", itemCtrl.MoveItem)
	liturgies.Delete("/:id/items/:item_id", itemCtrl.RemoveItem)
}
