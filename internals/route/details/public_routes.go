package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "churchhub_backend/internals/features/churches/route"
	authRoute "churchhub_backend/internals/features/users/auth/route"
)

// PublicRoutes: everything under /api/public
func PublicRoutes(router fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(router, db)
	churchRoute.ChurchPublicRoutes(router, db)
}
