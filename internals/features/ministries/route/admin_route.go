package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/ministries/controller"
)

// MinistryAdminRoutes: mounted under /api/a
func MinistryAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMinistryController(db)

	ministries := router.Group("/ministries")
	ministries.Get("/", ctrl.GetMinistries)
	ministries.Post("/", ctrl.CreateMinistry)
	ministries.Patch("/:id", ctrl.UpdateMinistry)
	ministries.Delete("/:id", ctrl.DeleteMinistry)

	ministries.Get("/:id/members", ctrl.GetMinistryMembers)
	ministries.Post("/:id/members", ctrl.AddMinistryMember)
	ministries.Delete("/:id/members/:member_id", ctrl.RemoveMinistryMember)
}
