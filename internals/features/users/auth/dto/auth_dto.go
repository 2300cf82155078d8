// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=255"`
	UserEmail    string `json:"user_email" validate:"required,email,max=255"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type InviteRequest struct {
	TargetEmail   string    `json:"target_email" validate:"required,email,max=255"`
	ChurchID      uuid.UUID `json:"church_id" validate:"required"`
	GrantAdmin    bool      `json:"grant_admin"`
	GrantAllPages bool      `json:"grant_all_pages"`
}

type AuthUserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email"`
}

type LoginResponse struct {
	User         AuthUserResponse `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}
