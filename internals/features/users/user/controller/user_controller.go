package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/u/me — the account plus every church membership
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var profiles []model.ProfileModel
	if err := ctrl.DB.
		Where("profile_user_id = ?", userID).
		Order("profile_created_at ASC").
		Find(&profiles).Error; err != nil {
		log.Printf("[ERROR] load profiles: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profiles")
	}

	return helper.JsonOK(c, "Me", fiber.Map{
		"user":     user,
		"profiles": profiles,
	})
}

// 🟢 GET /api/a/users — the tenant's provisioned accounts
func (ctrl *UserController) GetChurchUsers(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.ProfileModel{}).
		Where("profile_church_id = ?", churchID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count church users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	type row struct {
		UserID                 string `gorm:"column:user_id" json:"user_id"`
		UserFullName           string `gorm:"column:user_full_name" json:"user_full_name"`
		UserEmail              string `gorm:"column:user_email" json:"user_email"`
		ProfileRole            string `gorm:"column:profile_role" json:"profile_role"`
		ProfilePagePermissions string `gorm:"column:profile_page_permissions" json:"profile_page_permissions"`
	}
	var rows []row
	if err := ctrl.DB.Model(&model.ProfileModel{}).
		Select("users.user_id, users.user_full_name, users.user_email, profiles.profile_role, profiles.profile_page_permissions").
		Joins("JOIN users ON users.user_id = profiles.profile_user_id AND users.user_deleted_at IS NULL").
		Where("profiles.profile_church_id = ?", churchID).
		Order("users.user_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list church users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Users", rows, &pg)
}
