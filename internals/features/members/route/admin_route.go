package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/members/controller"
)

// MemberAdminRoutes: mounted under /api/a
func MemberAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := router.Group("/members")
	members.Get("/", ctrl.GetMembers)
	members.Get("/birthdays", ctrl.GetBirthdays)
	members.Post("/", ctrl.CreateMember)
	members.Patch("/:id", ctrl.UpdateMember)
	members.Delete("/:id", ctrl.DeleteMember)
}
