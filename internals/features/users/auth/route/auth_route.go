package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/auth/controller"
	"churchhub_backend/internals/middlewares"
)

// AuthPublicRoutes: mounted under /api/public
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh", ctrl.Refresh)
}

// AuthUserRoutes: mounted under /api/u (JWT required)
func AuthUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
}

// InviteAdminRoutes: mounted under /api/a
func InviteAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInviteController(db)
	router.Post("/invites", ctrl.CreateInvite)
}
