// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	userModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("account is inactive")
	ErrGoogleDisabled     = errors.New("google login is not configured")
)

// Register creates the auth identity. Profiles (church membership) are
// provisioned separately via invites.
func Register(db *gorm.DB, fullName, email, password string) (*userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing int64
	if err := db.Model(&userModel.UserModel{}).
		Where("LOWER(user_email) = ?", email).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &userModel.UserModel{
		UserFullName: strings.TrimSpace(fullName),
		UserEmail:    email,
		UserPassword: hash,
		UserIsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and hands back the user for token issuing.
func Login(db *gorm.DB, email, password string) (*userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.
		Where("LOWER(user_email) = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.UserPassword == "" || !helper.CheckPasswordHash(password, user.UserPassword) {
		return nil, ErrInvalidCredentials
	}
	if !user.UserIsActive {
		return nil, ErrUserInactive
	}
	return &user, nil
}

// LoginGoogle verifies a Google ID token and resolves or creates the user.
func LoginGoogle(db *gorm.DB, idToken string) (*userModel.UserModel, error) {
	if configs.GoogleClientID == "" {
		return nil, ErrGoogleDisabled
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fmt.Errorf("verify google token: %w", err)
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("decode google token: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))

	var user userModel.UserModel
	err = db.Where("user_google_id = ?", claims.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fall back to the email: links google to an invited account
		err = db.Where("LOWER(user_email) = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = userModel.UserModel{
				UserFullName: strings.TrimSpace(claims.Name),
				UserEmail:    email,
				UserGoogleID: claims.Sub,
				UserIsActive: true,
			}
			if createErr := db.Create(&user).Error; createErr != nil {
				return nil, createErr
			}
			return &user, nil
		}
		if err != nil {
			return nil, err
		}
		if updErr := db.Model(&user).Update("user_google_id", claims.Sub).Error; updErr != nil {
			return nil, updErr
		}
	} else if err != nil {
		return nil, err
	}

	if !user.UserIsActive {
		return nil, ErrUserInactive
	}
	return &user, nil
}
