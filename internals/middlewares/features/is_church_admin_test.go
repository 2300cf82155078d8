package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchhub_backend/internals/constants"
	helpers "churchhub_backend/internals/helpers"
)

func newGuardedApp(role string, activeChurch uuid.UUID, adminIDs []string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helpers.LocUserRole, role)
		}
		if activeChurch != uuid.Nil {
			c.Locals(helpers.LocActiveChurchID, activeChurch.String())
		}
		if adminIDs != nil {
			c.Locals(helpers.LocChurchAdminIDs, adminIDs)
		}
		return c.Next()
	})
	app.Use(IsChurchAdmin())
	app.Get("/guarded", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("church_id").(string))
	})
	return app
}

func TestIsChurchAdminAllowsGrantedChurch(t *testing.T) {
	church := uuid.New()
	app := newGuardedApp(constants.RoleAdmin, church, []string{church.String()})

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIsChurchAdminHeaderSwitchesChurch(t *testing.T) {
	home := uuid.New()
	other := uuid.New()
	app := newGuardedApp(constants.RoleAdmin, home, []string{home.String(), other.String()})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("X-Active-Church-ID", other.String())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIsChurchAdminRejectsUngrantedChurch(t *testing.T) {
	home := uuid.New()
	app := newGuardedApp(constants.RoleAdmin, home, []string{home.String()})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("X-Active-Church-ID", uuid.New().String())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestIsChurchAdminRejectsMemberRole(t *testing.T) {
	church := uuid.New()
	app := newGuardedApp(constants.RoleMember, church, []string{church.String()})

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestIsChurchAdminOwnerBypasses(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helpers.LocUserRole, constants.RoleOwner)
		return c.Next()
	})
	app.Use(IsChurchAdmin())
	app.Get("/guarded", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
