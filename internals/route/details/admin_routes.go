package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cellRoute "churchhub_backend/internals/features/cells/route"
	churchRoute "churchhub_backend/internals/features/churches/route"
	eventRoute "churchhub_backend/internals/features/events/route"
	liturgyRoute "churchhub_backend/internals/features/liturgies/route"
	mediaRoute "churchhub_backend/internals/features/media/route"
	memberRoute "churchhub_backend/internals/features/members/route"
	ministryRoute "churchhub_backend/internals/features/ministries/route"
	prayerRoute "churchhub_backend/internals/features/prayers/route"
	authRoute "churchhub_backend/internals/features/users/auth/route"
	userRoute "churchhub_backend/internals/features/users/user/route"
)

// AdminRoutes: everything under /api/a (JWT + church admin)
func AdminRoutes(router fiber.Router, db *gorm.DB) {
	churchRoute.ChurchAdminRoutes(router, db)
	memberRoute.MemberAdminRoutes(router, db)
	cellRoute.CellAdminRoutes(router, db)
	ministryRoute.MinistryAdminRoutes(router, db)
	eventRoute.EventAdminRoutes(router, db)
	liturgyRoute.LiturgyAdminRoutes(router, db)
	mediaRoute.MediaAdminRoutes(router, db)
	prayerRoute.PrayerRequestAdminRoutes(router, db)
	authRoute.InviteAdminRoutes(router, db)
	userRoute.UserAdminRoutes(router, db)
}
