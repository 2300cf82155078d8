// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	authModel "churchhub_backend/internals/features/users/auth/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IssueTokenPair mints the access JWT from the user's profiles and stores
// the sha256 of a fresh random refresh token.
func IssueTokenPair(db *gorm.DB, user *userModel.UserModel) (*TokenPair, error) {
	var profiles []userModel.ProfileModel
	if err := db.
		Where("profile_user_id = ?", user.UserID).
		Order("profile_created_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	role := "member"
	activeChurchID := ""
	adminIDs := []string{}
	for i := range profiles {
		p := &profiles[i]
		if activeChurchID == "" {
			activeChurchID = p.ProfileChurchID.String()
			role = p.ProfileRole
		}
		if p.ProfileRole == "admin" {
			adminIDs = append(adminIDs, p.ProfileChurchID.String())
		}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":               user.UserID.String(),
		"role":             role,
		"iat":              now.Unix(),
		"exp":              now.Add(AccessTokenTTL).Unix(),
		"church_admin_ids": adminIDs,
	}
	if activeChurchID != "" {
		claims["active_church_id"] = activeChurchID
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	row := &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      HashRefreshToken(refresh),
		RefreshTokenExpiresAt: now.Add(RefreshTokenTTL),
	}
	if err := db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RotateRefreshToken exchanges a valid refresh token for a new pair, burning
// the old row so a replay fails.
func RotateRefreshToken(db *gorm.DB, rawToken string) (*TokenPair, error) {
	var row authModel.RefreshTokenModel
	if err := db.
		Where("refresh_token_hash = ? AND refresh_token_expires_at > ?", HashRefreshToken(rawToken), time.Now()).
		First(&row).Error; err != nil {
		return nil, err
	}
	if err := db.Delete(&row).Error; err != nil {
		return nil, fmt.Errorf("burn refresh token: %w", err)
	}

	var user userModel.UserModel
	if err := db.
		Where("user_id = ? AND user_is_active = ?", row.RefreshTokenUserID, true).
		First(&user).Error; err != nil {
		return nil, err
	}
	return IssueTokenPair(db, &user)
}

// RevokeRefreshToken drops a single token (logout). Unknown tokens are a
// no-op so logout is idempotent.
func RevokeRefreshToken(db *gorm.DB, rawToken string) error {
	return db.
		Where("refresh_token_hash = ?", HashRefreshToken(rawToken)).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// RevokeAllForUser drops every session of the user.
func RevokeAllForUser(db *gorm.DB, userID uuid.UUID) error {
	return db.
		Where("refresh_token_user_id = ?", userID).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// PurgeExpiredRefreshTokens removes rows past their expiry. Returns the
// number deleted; called by the cleanup scheduler.
func PurgeExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := db.
		Where("refresh_token_expires_at <= ?", time.Now()).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("refresh token entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
