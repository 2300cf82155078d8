// file: internals/helpers/auth/church_context_resolver.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "churchhub_backend/internals/helpers"
)

type ChurchContext struct {
	ID   uuid.UUID
	Slug string
}

var (
	ErrChurchContextMissing = fiber.NewError(fiber.StatusBadRequest,
		"Church context not found. Provide :church_id in the path, the X-Active-Church-ID header or ?church_id.")
	ErrChurchContextForbidden = fiber.NewError(fiber.StatusForbidden,
		"You do not have admin access to this church.")
)

// profileTenants resolves user → church via the profiles table; results go
// through the TTL cache so repeated requests skip the lookup.
var profileTenants = NewTenantCache(tenantCacheTTL, 4096, SystemClock)

// InvalidateTenant drops a user's cached tenant (after provisioning changes).
func InvalidateTenant(userID uuid.UUID) { profileTenants.Invalidate(userID) }

// ResolveChurchID returns the acting user's church id, or uuid.Nil when the
// user is unauthenticated/unprovisioned. Callers treat Nil as "not ready"
// and answer with empty data rather than an error.
func ResolveChurchID(c *fiber.Ctx, db *gorm.DB) uuid.UUID {
	// 1) token claim — the common case
	if id, err := helpers.GetChurchIDFromToken(c); err == nil && id != uuid.Nil {
		return id
	}

	// 2) profile lookup, cached
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil
	}
	if id, ok := profileTenants.Get(userID); ok {
		return id
	}

	var churchID uuid.UUID
	if err := db.Raw(`
		SELECT profile_church_id
		FROM profiles
		WHERE profile_user_id = ? AND profile_deleted_at IS NULL
		LIMIT 1
	`, userID).Scan(&churchID).Error; err != nil {
		return uuid.Nil
	}
	if churchID != uuid.Nil {
		profileTenants.Put(userID, churchID)
	}
	return churchID
}

// ResolveChurchContext: path → header → query → token, in that order.
func ResolveChurchContext(c *fiber.Ctx) (ChurchContext, error) {
	if id := strings.TrimSpace(c.Params("church_id")); id != "" {
		if uid, err := uuid.Parse(id); err == nil {
			return ChurchContext{ID: uid}, nil
		}
	}
	if slug := strings.TrimSpace(c.Params("church_slug")); slug != "" {
		return ChurchContext{Slug: slug}, nil
	}

	if h := strings.TrimSpace(c.Get("X-Active-Church-ID")); h != "" {
		if uid, err := uuid.Parse(h); err == nil {
			return ChurchContext{ID: uid}, nil
		}
	}

	if q := strings.TrimSpace(c.Query("church_id")); q != "" {
		if uid, err := uuid.Parse(q); err == nil {
			return ChurchContext{ID: uid}, nil
		}
	}

	if id, err := helpers.GetChurchIDFromToken(c); err == nil && id != uuid.Nil {
		return ChurchContext{ID: id}, nil
	}

	return ChurchContext{}, ErrChurchContextMissing
}
