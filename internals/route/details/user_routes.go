package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "churchhub_backend/internals/features/churches/route"
	authRoute "churchhub_backend/internals/features/users/auth/route"
	userRoute "churchhub_backend/internals/features/users/user/route"
)

// UserRoutes: everything under /api/u (JWT, any role)
func UserRoutes(router fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(router, db)
	userRoute.UserRoutes(router, db)
	churchRoute.ChurchUserRoutes(router, db)
}
