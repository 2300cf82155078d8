package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/constants"
	helpers "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

// IsChurchAdmin guards the /api/a group: only admins (or the platform
// owner) of the resolved church get through. The church comes from the
// path, the X-Active-Church-ID header, the query string or the token, in
// that order, so multi-church admins can switch without re-logging in.
func IsChurchAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helpers.GetUserRoleFromToken(c)

		// ✅ owner bypass
		if role == constants.RoleOwner {
			return c.Next()
		}

		if role != constants.RoleAdmin {
			log.Printf("[MIDDLEWARE] access denied: role=%q path=%s", role, c.Path())
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}

		ctx, err := helperAuth.ResolveChurchContext(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has no church access")
		}

		churchID := ctx.ID
		if churchID == uuid.Nil && ctx.Slug != "" {
			db, _ := c.Locals("DB").(*gorm.DB)
			if db == nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Database not available")
			}
			if err := db.Raw(`
				SELECT church_id FROM churches
				WHERE LOWER(church_slug) = LOWER(?) AND church_deleted_at IS NULL
				LIMIT 1
			`, ctx.Slug).Scan(&churchID).Error; err != nil || churchID == uuid.Nil {
				return fiber.NewError(fiber.StatusNotFound, "Church not found")
			}
		}
		if churchID == uuid.Nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has no church access")
		}

		// the requested church must be one the token grants admin on
		granted := false
		for _, s := range helpers.GetChurchAdminIDsFromToken(c) {
			if s == churchID.String() {
				granted = true
				break
			}
		}
		if !granted {
			return helperAuth.ErrChurchContextForbidden
		}

		c.Locals("church_id", churchID.String())
		c.Locals(helpers.LocActiveChurchID, churchID.String())
		return c.Next()
	}
}
