// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	mediaRoute "churchhub_backend/internals/features/media/route"
	"churchhub_backend/internals/middlewares"
	authMiddleware "churchhub_backend/internals/middlewares/auth"
	featureMiddleware "churchhub_backend/internals/middlewares/features"
	"churchhub_backend/internals/route/details"
)

// SetupRoutes wires the three API surfaces:
//
//	/api/public — no auth (marketing site, auth endpoints)
//	/api/u      — any authenticated user
//	/api/a      — church admins
//
// plus the bare share path /midia-share/:share_id, which sits outside
// /api because it is printed on distributed links.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.DBMiddleware(db))

	// stable share-link contract, never versioned
	mediaRoute.MediaShareRoutes(app, db)

	api := app.Group("/api")

	public := api.Group("/public")
	details.PublicRoutes(public, db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", jwt)
	details.UserRoutes(user, db)

	admin := api.Group("/a", jwt, featureMiddleware.IsChurchAdmin())
	details.AdminRoutes(admin, db)
}
