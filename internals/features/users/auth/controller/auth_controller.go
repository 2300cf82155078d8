package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/auth/dto"
	"churchhub_backend/internals/features/users/auth/service"
	userModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/public/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	user, err := service.Register(ctrl.DB, req.UserFullName, req.UserEmail, req.UserPassword)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}
	return helper.JsonCreated(c, "Registered", toAuthUser(user))
}

// 🟢 POST /api/public/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	user, err := service.Login(ctrl.DB, req.UserEmail, req.UserPassword)
	if err != nil {
		return loginError(c, err)
	}
	return ctrl.respondWithTokens(c, user)
}

// 🟢 POST /api/public/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	user, err := service.LoginGoogle(ctrl.DB, req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrGoogleDisabled) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google login is not configured")
		}
		if errors.Is(err, service.ErrUserInactive) {
			return helper.JsonError(c, fiber.StatusForbidden, "Account is inactive")
		}
		log.Printf("[ERROR] google login: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	return ctrl.respondWithTokens(c, user)
}

// 🟢 POST /api/public/auth/refresh
// Rotation: the presented token is burned, a new pair comes back.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	pair, err := service.RotateRefreshToken(ctrl.DB, req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
		}
		log.Printf("[ERROR] refresh: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh session")
	}
	return helper.JsonOK(c, "Session refreshed", pair)
}

// 🟢 POST /api/u/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if req.RefreshToken != "" {
		if err := service.RevokeRefreshToken(ctrl.DB, req.RefreshToken); err != nil {
			log.Printf("[WARN] logout revoke: %v", err)
		}
	}
	return helper.JsonOK(c, "Logged out", nil)
}

func (ctrl *AuthController) respondWithTokens(c *fiber.Ctx, user *userModel.UserModel) error {
	pair, err := service.IssueTokenPair(ctrl.DB, user)
	if err != nil {
		log.Printf("[ERROR] issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start session")
	}
	return helper.JsonOK(c, "Logged in", dto.LoginResponse{
		User:         toAuthUser(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func toAuthUser(u *userModel.UserModel) dto.AuthUserResponse {
	return dto.AuthUserResponse{
		UserID:       u.UserID,
		UserFullName: u.UserFullName,
		UserEmail:    u.UserEmail,
	}
}

func loginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrUserInactive):
		return helper.JsonError(c, fiber.StatusForbidden, "Account is inactive")
	default:
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log in")
	}
}
