package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churchhub_backend/internals/configs"
	authModel "churchhub_backend/internals/features/users/auth/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.ProfileModel{},
		&authModel.RefreshTokenModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserFullName: "Test User",
		UserEmail:    "user@example.com",
		UserIsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestIssueTokenPairClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := newAuthTestDB(t)
	user := seedUser(t, db)

	adminChurch := &userModel.ProfileModel{
		ProfileUserID:   user.UserID,
		ProfileChurchID: uuid.New(),
		ProfileRole:     "admin",
	}
	require.NoError(t, db.Create(adminChurch).Error)

	pair, err := IssueTokenPair(db, user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	tok, err := jwt.Parse(pair.AccessToken, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, adminChurch.ProfileChurchID.String(), claims["active_church_id"])

	adminIDs, ok := claims["church_admin_ids"].([]any)
	require.True(t, ok)
	require.Len(t, adminIDs, 1)
	assert.Equal(t, adminChurch.ProfileChurchID.String(), adminIDs[0])
}

func TestRotateRefreshTokenBurnsOldToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := newAuthTestDB(t)
	user := seedUser(t, db)

	pair, err := IssueTokenPair(db, user)
	require.NoError(t, err)

	next, err := RotateRefreshToken(db, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// replaying the burned token fails
	_, err = RotateRefreshToken(db, pair.RefreshToken)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRotateRefreshTokenRejectsExpired(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := newAuthTestDB(t)
	user := seedUser(t, db)

	raw := "stale-token"
	row := &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      HashRefreshToken(raw),
		RefreshTokenExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(row).Error)

	_, err := RotateRefreshToken(db, raw)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPurgeExpiredRefreshTokens(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedUser(t, db)

	expired := &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      HashRefreshToken("old"),
		RefreshTokenExpiresAt: time.Now().Add(-time.Hour),
	}
	live := &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      HashRefreshToken("new"),
		RefreshTokenExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(expired).Error)
	require.NoError(t, db.Create(live).Error)

	n, err := PurgeExpiredRefreshTokens(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var remaining int64
	require.NoError(t, db.Model(&authModel.RefreshTokenModel{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}
