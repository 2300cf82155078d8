package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/user/controller"
)

// UserRoutes: mounted under /api/u
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	router.Get("/me", ctrl.GetMe)
}

// UserAdminRoutes: mounted under /api/a
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	router.Get("/users", ctrl.GetChurchUsers)
}
