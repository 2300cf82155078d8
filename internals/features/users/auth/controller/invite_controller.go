package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"churchhub_backend/internals/constants"
	"churchhub_backend/internals/features/users/auth/dto"
	userModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
)

// pages an admin profile can open; GrantAllPages hands out the full set
var allPagePermissions = []string{
	"dashboard", "members", "cells", "ministries",
	"events", "liturgies", "media", "prayers", "settings",
}

const invitedDefaultPassword = "mudar123" // the invitee is told to change it

type InviteController struct {
	DB *gorm.DB
}

func NewInviteController(db *gorm.DB) *InviteController {
	return &InviteController{DB: db}
}

// 🟢 POST /api/a/invites
// Resolves or creates the auth user for target_email and upserts their
// profile in the given church. The tenant cache entry of the invited user
// is dropped so the new membership is visible on their next request.
func (ctrl *InviteController) CreateInvite(c *fiber.Ctx) error {
	var req dto.InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// the actor must administer the target church
	if !ctrl.actorAdministers(c, req.ChurchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not an admin of that church")
	}

	email := strings.ToLower(strings.TrimSpace(req.TargetEmail))

	var user userModel.UserModel
	var created bool
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("LOWER(user_email) = ?", email).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hash, hashErr := helper.HashPassword(invitedDefaultPassword)
			if hashErr != nil {
				return hashErr
			}
			user = userModel.UserModel{
				UserFullName: strings.SplitN(email, "@", 2)[0],
				UserEmail:    email,
				UserPassword: hash,
				UserIsActive: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			created = true
		}

		role := constants.RoleMember
		if req.GrantAdmin {
			role = constants.RoleAdmin
		}
		pages := pq.StringArray{}
		if req.GrantAllPages {
			pages = append(pages, allPagePermissions...)
		}

		var profile userModel.ProfileModel
		err := tx.
			Where("profile_user_id = ? AND profile_church_id = ?", user.UserID, req.ChurchID).
			First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = userModel.ProfileModel{
				ProfileUserID:          user.UserID,
				ProfileChurchID:        req.ChurchID,
				ProfileRole:            role,
				ProfilePagePermissions: pages,
			}
			return tx.Create(&profile).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&profile).Updates(map[string]any{
			"profile_role":             role,
			"profile_page_permissions": pages,
		}).Error
	})
	if err != nil {
		log.Printf("[ERROR] invite: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to provision invite")
	}

	helperAuth.InvalidateTenant(user.UserID)

	msg := "Invite applied to existing account"
	if created {
		msg = "Account created and invite applied"
	}
	return helper.JsonCreated(c, msg, fiber.Map{
		"user_id":         user.UserID,
		"user_email":      user.UserEmail,
		"church_id":       req.ChurchID,
		"account_created": created,
	})
}

func (ctrl *InviteController) actorAdministers(c *fiber.Ctx, churchID uuid.UUID) bool {
	if helper.GetUserRoleFromToken(c) == constants.RoleOwner {
		return true
	}
	for _, s := range helper.GetChurchAdminIDsFromToken(c) {
		if s == churchID.String() {
			return true
		}
	}
	return false
}
