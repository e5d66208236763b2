package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func accountTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func registerTestUser(t *testing.T, svc *AccountService) *models.User {
	t.Helper()
	user, err := svc.Register("Jane Doe", "jane@example.com", "correct-horse")
	require.NoError(t, err)
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))

	user := registerTestUser(t, svc)

	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, svc.VerifyPassword(user, "correct-horse"))
	assert.False(t, svc.VerifyPassword(user, "wrong-password"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	registerTestUser(t, svc)

	_, err := svc.Register("Other Jane", "jane@example.com", "another-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindActiveByEmailNormalizes(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	created := registerTestUser(t, svc)

	found, err := svc.FindActiveByEmail("  JANE@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestDeactivatedAccountsAreInvisible(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	require.NoError(t, svc.Deactivate(user))

	_, err := svc.FindActiveByID(user.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, err = svc.FindActiveByEmail("jane@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSetPasswordBackdatesChangeTime(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	before := time.Now()
	require.NoError(t, svc.SetPassword(user, "new-password-123"))

	require.NotNil(t, user.PasswordChangedAt)
	assert.True(t, user.PasswordChangedAt.Before(before),
		"change time must predate tokens minted in the same instant")
	assert.True(t, svc.VerifyPassword(user, "new-password-123"))
}

func TestSetPasswordClearsPendingResetToken(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	plaintext, err := svc.CreateResetToken(user)
	require.NoError(t, err)
	require.True(t, user.HasPendingResetToken())

	require.NoError(t, svc.SetPassword(user, "new-password-123"))
	assert.False(t, user.HasPendingResetToken())

	_, err = svc.ConsumeResetToken(plaintext, time.Now())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestConsumeResetToken(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	plaintext, err := svc.CreateResetToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, user.PasswordResetToken,
		"only the digest may be stored")

	found, err := svc.ConsumeResetToken(plaintext, time.Now())
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestConsumeResetTokenExpired(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	plaintext, err := svc.CreateResetToken(user)
	require.NoError(t, err)

	_, err = svc.ConsumeResetToken(plaintext, time.Now().Add(utils.ResetTokenTTL+time.Minute))
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestConsumeResetTokenWrongPlaintext(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	_, err := svc.CreateResetToken(user)
	require.NoError(t, err)

	_, err = svc.ConsumeResetToken("not-the-token", time.Now())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestClearResetToken(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	plaintext, err := svc.CreateResetToken(user)
	require.NoError(t, err)

	require.NoError(t, svc.ClearResetToken(user))
	assert.False(t, user.HasPendingResetToken())

	_, err = svc.ConsumeResetToken(plaintext, time.Now())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestResetPasswordWithToken(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	user := registerTestUser(t, svc)

	plaintext, err := svc.CreateResetToken(user)
	require.NoError(t, err)

	updated, err := svc.ResetPasswordWithToken(plaintext, "brand-new-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)
	assert.True(t, svc.VerifyPassword(updated, "brand-new-pass"))
	assert.False(t, updated.HasPendingResetToken())

	// The token is single-use.
	_, err = svc.ResetPasswordWithToken(plaintext, "yet-another-pass")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestResetPasswordWithInvalidToken(t *testing.T) {
	svc := NewAccountService(accountTestDB(t))
	registerTestUser(t, svc)

	_, err := svc.ResetPasswordWithToken("bogus", "brand-new-pass")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
