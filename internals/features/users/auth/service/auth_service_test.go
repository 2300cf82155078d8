package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "churchhub_backend/internals/features/users/user/model"
)

func TestRegisterThenLogin(t *testing.T) {
	db := newAuthTestDB(t)

	user, err := Register(db, "Maria Souza", "Maria@Example.com", "s3nh4-forte")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.UserEmail)
	assert.NotEqual(t, "s3nh4-forte", user.UserPassword) // stored as bcrypt hash

	got, err := Login(db, "maria@example.com", "s3nh4-forte")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)

	// case-insensitive email on login too
	got, err = Login(db, "MARIA@EXAMPLE.COM", "s3nh4-forte")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newAuthTestDB(t)

	_, err := Register(db, "Maria Souza", "maria@example.com", "s3nh4-forte")
	require.NoError(t, err)

	_, err = Login(db, "maria@example.com", "senha-errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newAuthTestDB(t)

	_, err := Login(db, "ninguem@example.com", "tanto-faz")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginGoogleOnlyAccountHasNoPassword(t *testing.T) {
	db := newAuthTestDB(t)

	// accounts created via Google sign-in carry an empty password hash
	u := &userModel.UserModel{
		UserFullName: "Google User",
		UserEmail:    "g@example.com",
		UserGoogleID: "sub-123",
		UserIsActive: true,
	}
	require.NoError(t, db.Create(u).Error)

	_, err := Login(db, "g@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newAuthTestDB(t)

	user, err := Register(db, "Maria Souza", "maria@example.com", "s3nh4-forte")
	require.NoError(t, err)
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Update("user_is_active", false).Error)

	_, err = Login(db, "maria@example.com", "s3nh4-forte")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newAuthTestDB(t)

	_, err := Register(db, "Maria Souza", "maria@example.com", "s3nh4-forte")
	require.NoError(t, err)

	_, err = Register(db, "Outra Maria", "MARIA@example.com", "outra-senha")
	assert.ErrorIs(t, err, ErrEmailTaken)
}
